// Package handlers orchestrates the encoding workflows for the CLI.
package handlers

import (
	"context"

	"github.com/slanglab/slangvec/internal/domain/entities"
	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/domain/services"
	"github.com/slanglab/slangvec/internal/infrastructure/vectorio"
)

// EncodeHandler encodes a dataset and persists the per-split vectors.
type EncodeHandler struct {
	encoder ports.SentenceEncoder
	svc     *services.EncodeService
}

// NewEncodeHandler creates a new encode handler.
func NewEncodeHandler(encoder ports.SentenceEncoder) *EncodeHandler {
	return &EncodeHandler{
		encoder: encoder,
		svc:     services.NewEncodeService(encoder),
	}
}

// Encode runs the encode service over the dataset and writes the result
// under outDir, named after the encoder.
func (h *EncodeHandler) Encode(ctx context.Context, ds *entities.Dataset, splits *entities.SplitIndex, encodeTest bool, outDir string) (*vectorio.Manifest, error) {
	encoded, err := h.svc.EncodeDataset(ctx, ds, splits, encodeTest)
	if err != nil {
		return nil, err
	}

	return vectorio.WriteEncoded(outDir, h.encoder.Name(), h.encoder.Name(), encoded)
}
