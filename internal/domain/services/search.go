package services

import (
	"context"
	"fmt"

	"github.com/slanglab/slangvec/internal/domain/entities"
	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/textprep"
)

// DefaultSearchLimit is the default number of results to return.
const DefaultSearchLimit = 10

// SearchService finds stored definition vectors similar to a query sentence.
type SearchService struct {
	encoder  ports.SentenceEncoder
	vectorDB ports.VectorDB
}

// NewSearchService creates a new search service.
func NewSearchService(encoder ports.SentenceEncoder, vectorDB ports.VectorDB) *SearchService {
	return &SearchService{
		encoder:  encoder,
		vectorDB: vectorDB,
	}
}

// Search normalizes and encodes the query sentence, then returns the
// nearest stored definition vectors.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]entities.DefinitionVector, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	vecs, err := s.encoder.EncodeSentences(ctx, []string{textprep.Normalize(query)})
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("got %d embeddings for one query", len(vecs))
	}

	results, err := s.vectorDB.Search(ctx, vecs[0], limit)
	if err != nil {
		return nil, fmt.Errorf("searching vectors: %w", err)
	}
	return results, nil
}
