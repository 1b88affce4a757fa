package wordtable

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/vecmath"
)

// CachedTable is a word encoder built directly from a serialized
// {word: vector} mapping, typically one produced by Table.ExportCache.
// It has no source arrays and no usage tracking.
type CachedTable struct {
	embeddings map[string][]float32
	vocab      []string
	dim        int
}

// LoadCache reads a JSON {word: vector} mapping from path.
func LoadCache(path string) (*CachedTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache file: %w", err)
	}

	var embeddings map[string][]float32
	if err := json.Unmarshal(data, &embeddings); err != nil {
		return nil, fmt.Errorf("parsing cache file: %w", err)
	}

	return NewCachedTable(embeddings)
}

// NewCachedTable builds a CachedTable from an in-memory mapping, inferring
// the dimension from an arbitrary entry. All vectors must share it.
func NewCachedTable(embeddings map[string][]float32) (*CachedTable, error) {
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("cached table has no entries")
	}

	vocab := make([]string, 0, len(embeddings))
	for word := range embeddings {
		vocab = append(vocab, word)
	}
	sort.Strings(vocab)

	dim := len(embeddings[vocab[0]])
	for _, word := range vocab {
		if len(embeddings[word]) != dim {
			return nil, fmt.Errorf("vector for %q has dimension %d, want %d", word, len(embeddings[word]), dim)
		}
	}

	return &CachedTable{
		embeddings: embeddings,
		vocab:      vocab,
		dim:        dim,
	}, nil
}

// EmbedWord returns the raw vector for word.
func (t *CachedTable) EmbedWord(word string) ([]float32, error) {
	vec, ok := t.embeddings[word]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ports.ErrWordNotFound)
	}
	return vec, nil
}

// NormEmbed returns the L2-unit-normalized vector for word.
func (t *CachedTable) NormEmbed(word string) ([]float32, error) {
	vec, err := t.EmbedWord(word)
	if err != nil {
		return nil, err
	}
	return vecmath.Normalize(vec)
}

// Dim returns the embedding dimension.
func (t *CachedTable) Dim() int { return t.dim }

// Vocab returns the cached words in lexical order.
func (t *CachedTable) Vocab() []string { return t.vocab }
