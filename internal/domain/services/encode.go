// Package services implements the encoding workflows over the domain ports.
package services

import (
	"context"
	"fmt"

	"github.com/slanglab/slangvec/internal/domain/entities"
	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/textprep"
)

// EncodeService turns a slang dataset into per-split sentence embeddings.
type EncodeService struct {
	encoder ports.SentenceEncoder
}

// NewEncodeService creates a new encode service.
func NewEncodeService(encoder ports.SentenceEncoder) *EncodeService {
	return &EncodeService{encoder: encoder}
}

// EncodeDataset encodes the slang definition sentences of the train and dev
// splits (and test, when encodeTest is set), plus the "standard" batch: every
// conventional definition of every vocabulary word, in vocabulary order and
// stored definition order. Any batch failure aborts the whole call.
func (s *EncodeService) EncodeDataset(ctx context.Context, ds *entities.Dataset, splits *entities.SplitIndex, encodeTest bool) (*entities.EncodedDataset, error) {
	encoded := &entities.EncodedDataset{}

	var err error
	if encoded.Train, err = s.encodeSlang(ctx, ds, splits.Train); err != nil {
		return nil, fmt.Errorf("encoding train split: %w", err)
	}
	if encoded.Dev, err = s.encodeSlang(ctx, ds, splits.Dev); err != nil {
		return nil, fmt.Errorf("encoding dev split: %w", err)
	}
	if encodeTest {
		if encoded.Test, err = s.encodeSlang(ctx, ds, splits.Test); err != nil {
			return nil, fmt.Errorf("encoding test split: %w", err)
		}
	}

	var sentences []string
	for _, word := range ds.Vocab {
		for _, def := range ds.Conv[word].Definitions {
			sentences = append(sentences, textprep.Normalize(def.Text))
		}
	}
	if encoded.Standard, err = s.encoder.EncodeSentences(ctx, sentences); err != nil {
		return nil, fmt.Errorf("encoding standard definitions: %w", err)
	}

	return encoded, nil
}

func (s *EncodeService) encodeSlang(ctx context.Context, ds *entities.Dataset, ind []int) ([][]float32, error) {
	sentences := make([]string, 0, len(ind))
	for _, i := range ind {
		sentences = append(sentences, textprep.Normalize(ds.Slang[i].Definition))
	}
	return s.encoder.EncodeSentences(ctx, sentences)
}
