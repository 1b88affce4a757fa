package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDataset = `{
  "vocab": ["lit", "salty"],
  "slang": [
    {"word": "lit", "definition": "Extremely good or exciting."},
    {"word": "salty", "definition": "Bitter or upset about something minor."},
    {"word": "lit", "definition": "Intoxicated."}
  ],
  "conventional": {
    "lit": {"definitions": [{"def": "Past tense of light."}]},
    "salty": {"definitions": [{"def": "Tasting of salt."}, {"def": "Of the sea."}]}
  }
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	ds, err := Load(writeFile(t, "data.json", validDataset))
	require.NoError(t, err)

	assert.Equal(t, []string{"lit", "salty"}, ds.Vocab)
	require.Len(t, ds.Slang, 3)
	assert.Equal(t, "Intoxicated.", ds.Slang[2].Definition)
	assert.Len(t, ds.Conv["salty"].Definitions, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load(writeFile(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing dataset file")
}

func TestLoad_VocabWordWithoutConvEntry(t *testing.T) {
	content := `{"vocab": ["ghost"], "slang": [], "conventional": {}}`
	_, err := Load(writeFile(t, "data.json", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestLoad_EmptySlangDefinition(t *testing.T) {
	content := `{"vocab": [], "slang": [{"word": "x", "definition": ""}], "conventional": {}}`
	_, err := Load(writeFile(t, "data.json", content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty definition")
}

func TestLoadSplits(t *testing.T) {
	splits, err := LoadSplits(writeFile(t, "splits.json", `{"train": [0, 2], "dev": [1], "test": []}`), 3)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, splits.Train)
	assert.Equal(t, []int{1}, splits.Dev)
	assert.Empty(t, splits.Test)
}

func TestLoadSplits_IndexOutOfRange(t *testing.T) {
	_, err := LoadSplits(writeFile(t, "splits.json", `{"train": [3], "dev": [], "test": []}`), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoadSplits_NegativeIndex(t *testing.T) {
	_, err := LoadSplits(writeFile(t, "splits.json", `{"train": [], "dev": [-1], "test": []}`), 3)
	require.Error(t, err)
}
