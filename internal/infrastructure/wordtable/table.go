// Package wordtable provides word-vector encoders backed by on-disk
// embedding tables.
package wordtable

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/vecmath"
)

// File suffixes of the raw table layout: <base>_word.txt holds the
// newline-delimited vocabulary, <base>_embed.npy the embedding matrix with
// one row per word.
const (
	WordFileSuffix  = "_word.txt"
	EmbedFileSuffix = "_embed.npy"
)

// Table is a word encoder built from the raw two-file table layout.
// It is immutable after load except for the optional usage cache.
type Table struct {
	embeddings map[string][]float32
	vocab      []string
	dim        int

	track bool
	cache map[string]struct{}
}

// Load builds a Table from <base>_word.txt and <base>_embed.npy. With
// track enabled, every successful lookup is recorded for later export.
func Load(base string, track bool) (*Table, error) {
	words, err := readWords(base + WordFileSuffix)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(base + EmbedFileSuffix)
	if err != nil {
		return nil, fmt.Errorf("opening embed file: %w", err)
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("reading embed matrix: %w", err)
	}

	rows, cols := m.Dims()
	if rows != len(words) {
		return nil, fmt.Errorf("embed matrix has %d rows for %d words", rows, len(words))
	}

	embeddings := make(map[string][]float32, len(words))
	for i, word := range words {
		vec := make([]float32, cols)
		for j := 0; j < cols; j++ {
			vec[j] = float32(m.At(i, j))
		}
		embeddings[word] = vec
	}

	t := &Table{
		embeddings: embeddings,
		vocab:      words,
		dim:        cols,
		track:      track,
	}
	if track {
		t.cache = make(map[string]struct{})
	}
	return t, nil
}

// EmbedWord returns the raw vector for word and records the word in the
// usage cache when tracking is enabled.
func (t *Table) EmbedWord(word string) ([]float32, error) {
	vec, ok := t.embeddings[word]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ports.ErrWordNotFound)
	}
	if t.track {
		t.cache[word] = struct{}{}
	}
	return vec, nil
}

// NormEmbed returns the L2-unit-normalized vector for word.
func (t *Table) NormEmbed(word string) ([]float32, error) {
	vec, err := t.EmbedWord(word)
	if err != nil {
		return nil, err
	}
	return vecmath.Normalize(vec)
}

// Dim returns the embedding dimension.
func (t *Table) Dim() int { return t.dim }

// Vocab returns the table vocabulary in file order.
func (t *Table) Vocab() []string { return t.vocab }

// CacheSize returns the number of tracked words.
func (t *Table) CacheSize() int { return len(t.cache) }

// CachedVectors returns a snapshot of the tracked {word: vector} subset.
func (t *Table) CachedVectors() map[string][]float32 {
	out := make(map[string][]float32, len(t.cache))
	for word := range t.cache {
		out[word] = t.embeddings[word]
	}
	return out
}

// ExportCache writes the tracked {word: vector} mapping to path as JSON.
// No-op when tracking is disabled.
func (t *Table) ExportCache(path string) error {
	if !t.track {
		return nil
	}

	data, err := json.Marshal(t.CachedVectors())
	if err != nil {
		return fmt.Errorf("serializing cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}

	return nil
}

// ResetCache clears the tracked word set. No-op when tracking is disabled.
func (t *Table) ResetCache() {
	if !t.track {
		return
	}
	t.cache = make(map[string]struct{})
}

func readWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word file %s is empty", path)
	}
	return words, nil
}
