// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer provides text tokenization and corpus preparation.
//
// Topic models consume documents as bag-of-words count matrices. This
// package wraps OpenAI BPE tokenizers and builds dense corpus-local
// vocabularies from raw text.
//
// Example:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	corpus := tokenizer.NewCorpus(tok)
//	for _, doc := range documents {
//	    if err := corpus.Add(doc); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	counts := corpus.Counts(backend) // [docs, vocab]
package tokenizer

import (
	"github.com/edda-ml/edda/internal/tokenizer"
)

// Tokenizer converts text to token IDs and back.
type Tokenizer = tokenizer.Tokenizer

// TikToken is an OpenAI BPE tokenizer.
type TikToken = tokenizer.TikToken

// Corpus accumulates tokenized documents for bag-of-words models.
type Corpus = tokenizer.Corpus

// NewTikToken creates a TikToken tokenizer with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a TikToken tokenizer for a specific model.
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}

// NewCorpus creates an empty corpus over the given tokenizer.
func NewCorpus(tok Tokenizer) *Corpus {
	return tokenizer.NewCorpus(tok)
}
