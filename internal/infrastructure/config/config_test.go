package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "text-embedding-3-small", cfg.Encoder.Model)
	assert.Equal(t, "localhost", cfg.Qdrant.Host)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, "slangvec", cfg.Qdrant.Collection)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `encoder:
  model: text-embedding-3-large
  name: big
word_table:
  path: data/ft
  track: true
qdrant:
  host: qdrant.internal
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "text-embedding-3-large", cfg.Encoder.Model)
	assert.Equal(t, "big", cfg.Encoder.Name)
	assert.Equal(t, "data/ft", cfg.WordTable.Path)
	assert.True(t, cfg.WordTable.Track)
	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Host)
	// Defaults survive partial files.
	assert.Equal(t, 6334, cfg.Qdrant.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("QDRANT_API_KEY", "")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load(DefaultConfigFile)
	require.NoError(t, err)
	assert.Equal(t, Default().Qdrant, cfg.Qdrant)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("QDRANT_API_KEY", "qdrant-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  model: m\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Encoder.APIKey)
	assert.Equal(t, "qdrant-key", cfg.Qdrant.APIKey)
}

func TestLoad_ConfigKeyWinsOverEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoder:\n  api_key: file-key\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Encoder.APIKey)
}
