package vectorio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slanglab/slangvec/internal/domain/entities"
)

func testEncoded() *entities.EncodedDataset {
	return &entities.EncodedDataset{
		Train:    [][]float32{{1, 2}, {3, 4}},
		Dev:      [][]float32{{5, 6}},
		Test:     [][]float32{{7, 8}},
		Standard: [][]float32{{9, 10}, {11, 12}, {13, 14}},
	}
}

func TestWriteEncoded_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	manifest, err := WriteEncoded(dir, "sbert", "openai_small", testEncoded())
	require.NoError(t, err)

	assert.Equal(t, "openai_small", manifest.Encoder)
	assert.Equal(t, 2, manifest.Dim)
	require.Len(t, manifest.Splits, 4)
	assert.Equal(t, 3, manifest.Splits[entities.SplitStandard].Count)
	assert.Equal(t, "sbert_train.npy", manifest.Splits[entities.SplitTrain].File)

	loaded, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded)

	train, err := ReadSplit(dir, loaded.Splits[entities.SplitTrain])
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, train)

	standard, err := ReadSplit(dir, loaded.Splits[entities.SplitStandard])
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{9, 10}, {11, 12}, {13, 14}}, standard)
}

func TestWriteEncoded_NoTestSplit(t *testing.T) {
	dir := t.TempDir()
	enc := testEncoded()
	enc.Test = nil

	manifest, err := WriteEncoded(dir, "sbert", "openai_small", enc)
	require.NoError(t, err)

	assert.NotContains(t, manifest.Splits, entities.SplitTest)
	_, statErr := os.Stat(filepath.Join(dir, "sbert_test.npy"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteEncoded_EmptySplit(t *testing.T) {
	dir := t.TempDir()
	enc := testEncoded()
	enc.Dev = [][]float32{}

	manifest, err := WriteEncoded(dir, "sbert", "openai_small", enc)
	require.NoError(t, err)

	sf := manifest.Splits[entities.SplitDev]
	assert.Equal(t, 0, sf.Count)
	assert.Empty(t, sf.File)

	vectors, err := ReadSplit(dir, sf)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	require.Error(t, err)
}

func TestReadSplit_CountMismatch(t *testing.T) {
	dir := t.TempDir()
	manifest, err := WriteEncoded(dir, "sbert", "m", testEncoded())
	require.NoError(t, err)

	sf := manifest.Splits[entities.SplitTrain]
	sf.Count = 5
	_, err = ReadSplit(dir, sf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest says 5")
}

func TestWriteEncoded_RaggedRows(t *testing.T) {
	enc := &entities.EncodedDataset{
		Train:    [][]float32{{1, 2}, {3}},
		Dev:      [][]float32{{1, 2}},
		Standard: [][]float32{{1, 2}},
	}
	_, err := WriteEncoded(t.TempDir(), "sbert", "m", enc)
	require.Error(t, err)
}
