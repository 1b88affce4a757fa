// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up when no --config
// flag is given.
const DefaultConfigFile = "slangvec.yaml"

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Encoder   EncoderConfig   `yaml:"encoder,omitempty"`
	WordTable WordTableConfig `yaml:"word_table,omitempty"`
	Qdrant    QdrantConfig    `yaml:"qdrant,omitempty"`
}

// EncoderConfig holds configuration for the sentence-embedding provider.
type EncoderConfig struct {
	Model  string `yaml:"model,omitempty"`
	Name   string `yaml:"name,omitempty"`
	APIKey string `yaml:"api_key,omitempty"`
	// BaseURL overrides the API endpoint, for OpenAI-compatible servers.
	BaseURL string `yaml:"base_url,omitempty"`
}

// WordTableConfig holds configuration for the word-vector table.
type WordTableConfig struct {
	// Path is the base path of the raw table files: <Path>_word.txt and
	// <Path>_embed.npy.
	Path string `yaml:"path,omitempty"`
	// CachePath points at a serialized {word: vector} mapping produced by
	// a cache export. When set, the precomputed-cache variant is used.
	CachePath string `yaml:"cache_path,omitempty"`
	// Track enables usage tracking on the raw table.
	Track bool `yaml:"track,omitempty"`
}

// QdrantConfig holds configuration for the Qdrant vector database.
type QdrantConfig struct {
	Host       string `yaml:"host,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Model: "text-embedding-3-small",
		},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "slangvec",
		},
	}
}

// Load loads configuration from the given file, falling back to defaults
// for anything unset. A missing file is not an error when it is the
// default location; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && path == DefaultConfigFile {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if c.Encoder.APIKey == "" {
			c.Encoder.APIKey = key
		}
	}
	if key := os.Getenv("QDRANT_API_KEY"); key != "" {
		if c.Qdrant.APIKey == "" {
			c.Qdrant.APIKey = key
		}
	}
}
