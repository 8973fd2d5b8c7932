package tokenizer

// Tokenizer converts text to token IDs and back.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int) (string, error)

	// Name returns the tokenizer name.
	Name() string
}
