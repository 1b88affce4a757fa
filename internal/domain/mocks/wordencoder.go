package mocks

import (
	"fmt"

	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/vecmath"
)

// WordEncoder is a mock implementation of ports.TrackingWordEncoder backed
// by a plain in-memory map.
type WordEncoder struct {
	Vectors  map[string][]float32
	Tracked  map[string]struct{}
	Exported []string
}

// EmbedWord looks the word up in the configured map and tracks it on a hit.
func (m *WordEncoder) EmbedWord(word string) ([]float32, error) {
	vec, ok := m.Vectors[word]
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ports.ErrWordNotFound)
	}
	if m.Tracked == nil {
		m.Tracked = make(map[string]struct{})
	}
	m.Tracked[word] = struct{}{}
	return vec, nil
}

// NormEmbed returns the unit-normalized vector for word.
func (m *WordEncoder) NormEmbed(word string) ([]float32, error) {
	vec, err := m.EmbedWord(word)
	if err != nil {
		return nil, err
	}
	return vecmath.Normalize(vec)
}

// Dim returns the dimension of an arbitrary configured vector.
func (m *WordEncoder) Dim() int {
	for _, vec := range m.Vectors {
		return len(vec)
	}
	return 0
}

// Vocab returns the configured words.
func (m *WordEncoder) Vocab() []string {
	words := make([]string, 0, len(m.Vectors))
	for w := range m.Vectors {
		words = append(words, w)
	}
	return words
}

// ExportCache records the export path instead of writing a file.
func (m *WordEncoder) ExportCache(path string) error {
	m.Exported = append(m.Exported, path)
	return nil
}

// ResetCache clears the tracked set.
func (m *WordEncoder) ResetCache() {
	m.Tracked = make(map[string]struct{})
}

// CachedVectors returns the tracked {word: vector} subset.
func (m *WordEncoder) CachedVectors() map[string][]float32 {
	out := make(map[string][]float32, len(m.Tracked))
	for w := range m.Tracked {
		out[w] = m.Vectors[w]
	}
	return out
}
