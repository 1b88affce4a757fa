// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/slanglab/slangvec/internal/domain/entities"
)

// SentenceEncoder is a mock implementation of ports.SentenceEncoder.
// It returns one distinct vector per sentence and records every batch
// it was asked to encode.
type SentenceEncoder struct {
	ModelName string
	Dim       int
	Err       error

	Batches [][]string
}

// Name returns the configured model name.
func (m *SentenceEncoder) Name() string {
	if m.ModelName == "" {
		return "mock"
	}
	return m.ModelName
}

// EncodeSentences returns a deterministic vector per sentence, keyed off
// the sentence's position in the overall call sequence.
func (m *SentenceEncoder) EncodeSentences(ctx context.Context, sentences []string) ([][]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Batches = append(m.Batches, sentences)

	dim := m.Dim
	if dim == 0 {
		dim = 4
	}
	out := make([][]float32, len(sentences))
	for i := range sentences {
		vec := make([]float32, dim)
		vec[i%dim] = 1
		out[i] = vec
	}
	return out, nil
}

// VectorDB is a mock implementation of ports.VectorDB.
type VectorDB struct {
	Err error

	EnsuredSize uint64
	Saved       []entities.DefinitionVector
	SaveCalls   int
	Queries     [][]float32
}

// EnsureCollection records the requested vector size.
func (m *VectorDB) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	if m.Err != nil {
		return m.Err
	}
	m.EnsuredSize = vectorSize
	return nil
}

// SaveBatch appends the vectors to the saved set.
func (m *VectorDB) SaveBatch(ctx context.Context, vectors []entities.DefinitionVector) error {
	if m.Err != nil {
		return m.Err
	}
	m.SaveCalls++
	m.Saved = append(m.Saved, vectors...)
	return nil
}

// Search records the query embedding and returns the saved vectors up
// to limit.
func (m *VectorDB) Search(ctx context.Context, embedding []float32, limit int) ([]entities.DefinitionVector, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Queries = append(m.Queries, embedding)
	if limit > len(m.Saved) {
		return m.Saved, nil
	}
	return m.Saved[:limit], nil
}

// Count returns the number of saved vectors.
func (m *VectorDB) Count(ctx context.Context) (uint64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return uint64(len(m.Saved)), nil
}
