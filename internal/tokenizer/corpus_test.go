package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edda-ml/edda/internal/backend/cpu"
)

// wordTokenizer maps whitespace-separated words to stable IDs, keeping
// corpus tests independent of BPE rank downloads.
type wordTokenizer struct {
	vocab map[string]int
	words []string
}

func newWordTokenizer() *wordTokenizer {
	return &wordTokenizer{vocab: make(map[string]int)}
}

func (w *wordTokenizer) Encode(text string) ([]int, error) {
	var ids []int
	for _, word := range strings.Fields(text) {
		id, ok := w.vocab[word]
		if !ok {
			id = len(w.words)
			w.vocab[word] = id
			w.words = append(w.words, word)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (w *wordTokenizer) Decode(tokens []int) (string, error) {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = w.words[t]
	}
	return strings.Join(parts, " "), nil
}

func (w *wordTokenizer) Name() string { return "word" }

func TestCorpusVocabulary(t *testing.T) {
	c := NewCorpus(newWordTokenizer())
	require.NoError(t, c.Add("the cat sat"))
	require.NoError(t, c.Add("the dog sat"))

	assert.Equal(t, 2, c.NumDocs())
	assert.Equal(t, 4, c.VocabSize(), "the cat sat dog")
	assert.Equal(t, 3, c.DocLen(0))
}

func TestCorpusCounts(t *testing.T) {
	c := NewCorpus(newWordTokenizer())
	require.NoError(t, c.Add("a b a"))
	require.NoError(t, c.Add("b b c"))

	counts := c.Counts(cpu.New())
	require.True(t, counts.Shape().Equal([]int{2, 3}))

	// Dense indices follow first occurrence: a=0, b=1, c=2.
	assert.Equal(t, 2.0, counts.At(0, 0))
	assert.Equal(t, 1.0, counts.At(0, 1))
	assert.Equal(t, 0.0, counts.At(0, 2))
	assert.Equal(t, 2.0, counts.At(1, 1))
	assert.Equal(t, 1.0, counts.At(1, 2))
}

func TestCorpusTopWords(t *testing.T) {
	c := NewCorpus(newWordTokenizer())
	require.NoError(t, c.Add("alpha beta gamma"))

	top := c.TopWords([]float64{0.1, 0.7, 0.2}, 2)
	assert.Equal(t, []string{"beta", "gamma"}, top)

	assert.Panics(t, func() { c.TopWords([]float64{1}, 1) })
}

func TestTikTokenRoundTrip(t *testing.T) {
	tok, err := NewTikToken("cl100k_base")
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}

	ids, err := tok.Encode("Hello, world!")
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	text, err := tok.Decode(ids)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", text)
	assert.Equal(t, "cl100k_base", tok.Name())
}

func TestTikTokenInvalidEncoding(t *testing.T) {
	_, err := NewTikToken("not_a_real_encoding")
	assert.Error(t, err)
}
