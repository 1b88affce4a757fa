package ports

import "context"

// SentenceEncoder turns batches of sentences into dense vectors using a
// pretrained model.
type SentenceEncoder interface {
	// Name identifies the underlying model configuration.
	Name() string

	// EncodeSentences returns one L2-normalized vector per input sentence,
	// order-preserving. A batch either fully succeeds or fails as a whole.
	EncodeSentences(ctx context.Context, sentences []string) ([][]float32, error)
}
