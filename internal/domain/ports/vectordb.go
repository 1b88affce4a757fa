package ports

import (
	"context"

	"github.com/slanglab/slangvec/internal/domain/entities"
)

// VectorDB defines the interface for storing encoded definition vectors.
type VectorDB interface {
	// EnsureCollection creates the backing collection for vectors of the
	// given dimension if it does not exist yet.
	EnsureCollection(ctx context.Context, vectorSize uint64) error

	// SaveBatch stores multiple definition vectors.
	SaveBatch(ctx context.Context, vectors []entities.DefinitionVector) error

	// Search returns the definition vectors most similar to the embedding.
	Search(ctx context.Context, embedding []float32, limit int) ([]entities.DefinitionVector, error)

	// Count returns the number of stored vectors.
	Count(ctx context.Context) (uint64, error)
}
