package tokenizer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/edda-ml/edda/internal/tensor"
)

// Corpus turns documents into the bag-of-words form topic models
// consume. Token IDs from the tokenizer are remapped to a dense
// corpus-local vocabulary, so the count matrix only spans tokens that
// actually occur.
type Corpus struct {
	tok     Tokenizer
	vocab   map[int]int // tokenizer ID -> dense index
	words   []int       // dense index -> tokenizer ID
	docs    [][]int     // per-document dense token indices
	rawDocs []string
}

// NewCorpus creates an empty corpus over the given tokenizer.
func NewCorpus(tok Tokenizer) *Corpus {
	return &Corpus{
		tok:   tok,
		vocab: make(map[int]int),
	}
}

// Add tokenizes a document and appends it to the corpus, growing the
// vocabulary as needed.
func (c *Corpus) Add(text string) error {
	ids, err := c.tok.Encode(text)
	if err != nil {
		return fmt.Errorf("failed to tokenize document: %w", err)
	}
	doc := make([]int, 0, len(ids))
	for _, id := range ids {
		dense, ok := c.vocab[id]
		if !ok {
			dense = len(c.words)
			c.vocab[id] = dense
			c.words = append(c.words, id)
		}
		doc = append(doc, dense)
	}
	c.docs = append(c.docs, doc)
	c.rawDocs = append(c.rawDocs, text)
	return nil
}

// NumDocs returns the number of documents.
func (c *Corpus) NumDocs() int { return len(c.docs) }

// VocabSize returns the corpus-local vocabulary size.
func (c *Corpus) VocabSize() int { return len(c.words) }

// Doc returns the dense token indices of document i.
func (c *Corpus) Doc(i int) []int { return c.docs[i] }

// DocLen returns the token count of document i.
func (c *Corpus) DocLen(i int) int { return len(c.docs[i]) }

// Word decodes dense vocabulary index v back to its surface form.
func (c *Corpus) Word(v int) string {
	text, err := c.tok.Decode([]int{c.words[v]})
	if err != nil {
		return fmt.Sprintf("<%d>", c.words[v])
	}
	return strings.TrimFunc(text, unicode.IsSpace)
}

// Counts builds the [docs, vocab] document-term count matrix.
func (c *Corpus) Counts(backend tensor.Backend) *tensor.Tensor {
	d, v := c.NumDocs(), c.VocabSize()
	data := make([]float64, d*v)
	for i, doc := range c.docs {
		for _, w := range doc {
			data[i*v+w]++
		}
	}
	return tensor.New(tensor.FromData(data, tensor.Shape{d, v}), backend)
}

// TopWords returns the surface forms of the k largest entries of a
// length-VocabSize weight vector, useful for printing fitted topics.
func (c *Corpus) TopWords(weights []float64, k int) []string {
	if len(weights) != c.VocabSize() {
		panic(fmt.Sprintf("tokenizer: weight vector has %d entries, vocabulary has %d", len(weights), c.VocabSize()))
	}
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return weights[idx[a]] > weights[idx[b]] })
	if k > len(idx) {
		k = len(idx)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = c.Word(idx[i])
	}
	return out
}
