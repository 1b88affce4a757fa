// Package openai provides a SentenceEncoder implementation using the
// OpenAI embeddings API.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/slanglab/slangvec/internal/infrastructure/config"
	"github.com/slanglab/slangvec/internal/vecmath"
)

// defaultName is the display name used when the caller names no model.
const defaultName = "openai_small"

// Encoder implements the SentenceEncoder interface using OpenAI.
type Encoder struct {
	client *openai.Client
	model  openai.EmbeddingModel
	name   string
}

// NewEncoder creates a new OpenAI sentence encoder. Construction is eager:
// configuration is validated and the client is established immediately.
//
// The display name defaults to "openai_small" when no model is named; an
// explicitly configured name wins; otherwise the model name is used.
func NewEncoder(cfg config.EncoderConfig) (*Encoder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	model := openai.SmallEmbedding3
	name := defaultName
	if cfg.Model != "" {
		model = openai.EmbeddingModel(cfg.Model)
		name = cfg.Model
	}
	if cfg.Name != "" {
		name = cfg.Name
	}

	return &Encoder{
		client: client,
		model:  model,
		name:   name,
	}, nil
}

// Name identifies the underlying model configuration.
func (e *Encoder) Name() string { return e.name }

// EncodeSentences batch-encodes the sentences and L2-normalizes each
// resulting vector. The output is ordered 1:1 with the input.
func (e *Encoder) EncodeSentences(ctx context.Context, sentences []string) ([][]float32, error) {
	if len(sentences) == 0 {
		return [][]float32{}, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: e.model,
		Input: sentences,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}

	if len(resp.Data) != len(sentences) {
		return nil, fmt.Errorf("got %d embeddings for %d sentences", len(resp.Data), len(sentences))
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = data.Embedding
	}

	normalized, err := vecmath.NormalizeRows(embeddings)
	if err != nil {
		return nil, fmt.Errorf("normalizing embeddings: %w", err)
	}

	return normalized, nil
}
