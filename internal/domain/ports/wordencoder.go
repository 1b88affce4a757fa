package ports

import "errors"

// ErrWordNotFound is returned when a queried word is absent from the
// backing embedding table.
var ErrWordNotFound = errors.New("word not found in embedding table")

// WordEncoder resolves vocabulary words to fixed-dimension embedding vectors.
type WordEncoder interface {
	// EmbedWord returns the raw vector for word. Fails with ErrWordNotFound
	// when the word is absent from the table.
	EmbedWord(word string) ([]float32, error)

	// NormEmbed returns the L2-unit-normalized vector for word. Fails like
	// EmbedWord on missing words, and on all-zero raw vectors.
	NormEmbed(word string) ([]float32, error)

	// Dim returns the embedding dimension shared by all table vectors.
	Dim() int

	// Vocab returns the table vocabulary.
	Vocab() []string
}

// TrackingWordEncoder is a WordEncoder that records which words were
// queried, for exporting a reduced table covering only those words.
type TrackingWordEncoder interface {
	WordEncoder

	// ExportCache writes the {word: vector} mapping for the tracked words
	// to path. No-op when tracking is disabled.
	ExportCache(path string) error

	// ResetCache clears the tracked word set. No-op when tracking is disabled.
	ResetCache()

	// CachedVectors returns a snapshot of the tracked {word: vector} subset.
	CachedVectors() map[string][]float32
}
