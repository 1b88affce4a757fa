package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slanglab/slangvec/internal/domain/entities"
)

// mockSentenceEncoder records batches and returns one vector per sentence
// whose first component encodes the batch number.
type mockSentenceEncoder struct {
	batches [][]string
	failOn  int
	err     error
}

func (m *mockSentenceEncoder) Name() string { return "mock" }

func (m *mockSentenceEncoder) EncodeSentences(ctx context.Context, sentences []string) ([][]float32, error) {
	m.batches = append(m.batches, sentences)
	if m.err != nil && len(m.batches) == m.failOn {
		return nil, m.err
	}
	out := make([][]float32, len(sentences))
	for i := range sentences {
		out[i] = []float32{float32(len(m.batches)), float32(i)}
	}
	return out, nil
}

func testDataset() *entities.Dataset {
	return &entities.Dataset{
		Vocab: []string{"lit", "salty"},
		Slang: []entities.SlangRecord{
			{Word: "lit", Definition: "Extremely Good!"},
			{Word: "salty", Definition: "Upset over something minor."},
			{Word: "lit", Definition: "Intoxicated, drunk."},
			{Word: "ghost", Definition: "To cut off contact abruptly."},
		},
		Conv: map[string]entities.ConvWord{
			"lit": {Definitions: []entities.Definition{
				{Text: "Past tense of light."},
			}},
			"salty": {Definitions: []entities.Definition{
				{Text: "Tasting of salt."},
				{Text: "Of the sea."},
			}},
		},
	}
}

func testSplits() *entities.SplitIndex {
	return &entities.SplitIndex{
		Train: []int{0, 2},
		Dev:   []int{1},
		Test:  []int{3},
	}
}

func TestEncodeService_EncodeDataset(t *testing.T) {
	enc := &mockSentenceEncoder{}
	svc := NewEncodeService(enc)

	encoded, err := svc.EncodeDataset(context.Background(), testDataset(), testSplits(), true)
	require.NoError(t, err)

	assert.Len(t, encoded.Train, 2)
	assert.Len(t, encoded.Dev, 1)
	assert.Len(t, encoded.Test, 1)
	// One vector per conventional definition across the whole vocab.
	assert.Len(t, encoded.Standard, 3)

	splits := encoded.Splits()
	assert.Len(t, splits, 4)
	assert.Contains(t, splits, entities.SplitTest)
}

func TestEncodeService_EncodeDataset_SkipTest(t *testing.T) {
	enc := &mockSentenceEncoder{}
	svc := NewEncodeService(enc)

	encoded, err := svc.EncodeDataset(context.Background(), testDataset(), testSplits(), false)
	require.NoError(t, err)

	assert.Nil(t, encoded.Test)
	splits := encoded.Splits()
	assert.Len(t, splits, 3)
	assert.NotContains(t, splits, entities.SplitTest)

	// Only train, dev and standard batches were sent.
	require.Len(t, enc.batches, 3)
}

func TestEncodeService_EncodeDataset_SentenceOrder(t *testing.T) {
	enc := &mockSentenceEncoder{}
	svc := NewEncodeService(enc)

	_, err := svc.EncodeDataset(context.Background(), testDataset(), testSplits(), true)
	require.NoError(t, err)

	require.Len(t, enc.batches, 4)
	// Train follows split index order, normalized.
	assert.Equal(t, []string{"extremely good", "intoxicated drunk"}, enc.batches[0])
	assert.Equal(t, []string{"upset over something minor"}, enc.batches[1])
	assert.Equal(t, []string{"to cut off contact abruptly"}, enc.batches[2])
	// Standard is vocabulary order, then stored definition order.
	assert.Equal(t, []string{"past tense of light", "tasting of salt", "of the sea"}, enc.batches[3])
}

func TestEncodeService_EncodeDataset_BatchFailureAborts(t *testing.T) {
	enc := &mockSentenceEncoder{failOn: 2, err: errors.New("model unavailable")}
	svc := NewEncodeService(enc)

	_, err := svc.EncodeDataset(context.Background(), testDataset(), testSplits(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding dev split")
	// No further batches after the failure.
	assert.Len(t, enc.batches, 2)
}
