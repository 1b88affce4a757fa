package services

import (
	"fmt"

	"github.com/slanglab/slangvec/internal/domain/ports"
)

// CacheService builds reduced word tables: the subset of a full embedding
// table actually referenced by a dataset.
type CacheService struct {
	table ports.TrackingWordEncoder
}

// NewCacheService creates a cache service over a tracking-enabled table.
func NewCacheService(table ports.TrackingWordEncoder) *CacheService {
	return &CacheService{table: table}
}

// Warm resets the usage cache and looks up every given word, so the cache
// holds exactly the deduplicated word set. A word absent from the table
// fails the whole operation.
func (s *CacheService) Warm(words []string) error {
	s.table.ResetCache()
	for _, word := range words {
		if _, err := s.table.EmbedWord(word); err != nil {
			return fmt.Errorf("warming cache: %w", err)
		}
	}
	return nil
}

// Build warms the cache with words and returns the reduced {word: vector}
// mapping.
func (s *CacheService) Build(words []string) (map[string][]float32, error) {
	if err := s.Warm(words); err != nil {
		return nil, err
	}
	return s.table.CachedVectors(), nil
}

// Export warms the cache with words, writes the reduced mapping to path
// and returns it.
func (s *CacheService) Export(words []string, path string) (map[string][]float32, error) {
	reduced, err := s.Build(words)
	if err != nil {
		return nil, err
	}
	if err := s.table.ExportCache(path); err != nil {
		return nil, fmt.Errorf("exporting cache: %w", err)
	}
	return reduced, nil
}
