package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TikToken wraps the pkoukk/tiktoken-go library for OpenAI BPE
// tokenizers.
//
// Supported encodings:
//   - cl100k_base: GPT-4, GPT-3.5-turbo, text-embedding-ada-002
//   - p50k_base: GPT-3, Codex
//   - r50k_base: older GPT-3 models
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken creates a TikToken tokenizer with the specified encoding.
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TikToken{encoding: encoding, name: encodingName}, nil
}

// NewTikTokenForModel creates a TikToken tokenizer for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}
	return &TikToken{encoding: encoding, name: modelName}, nil
}

// Encode converts text to token IDs.
func (t *TikToken) Encode(text string) ([]int, error) {
	return t.encoding.Encode(text, nil, nil), nil
}

// Decode converts token IDs back to text.
func (t *TikToken) Decode(tokens []int) (string, error) {
	return t.encoding.Decode(tokens), nil
}

// Name returns the tokenizer name.
func (t *TikToken) Name() string {
	return t.name
}
