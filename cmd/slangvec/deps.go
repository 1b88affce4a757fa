package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/infrastructure/config"
	encoder "github.com/slanglab/slangvec/internal/infrastructure/encoder/openai"
	"github.com/slanglab/slangvec/internal/infrastructure/wordtable"
	"github.com/slanglab/slangvec/internal/infrastructure/wordtable/sqlitestore"
)

func defaultConfigFile() string {
	return config.DefaultConfigFile
}

// withConfig loads the configuration and calls fn with it.
func withConfig(fn func(*config.Config) error) error {
	cfg, err := config.Load(globalConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return fn(cfg)
}

// buildEncoder creates the sentence encoder, with optional flag overrides
// on top of the configured model and display name.
func buildEncoder(cfg *config.Config, model, name string) (ports.SentenceEncoder, error) {
	encCfg := cfg.Encoder
	if model != "" {
		encCfg.Model = model
	}
	if name != "" {
		encCfg.Name = name
	}

	enc, err := encoder.NewEncoder(encCfg)
	if err != nil {
		return nil, fmt.Errorf("creating sentence encoder: %w", err)
	}
	return enc, nil
}

// wordTableFlags selects a word-encoder backend. At most one of the three
// sources should be set; flags override the configured word table.
type wordTableFlags struct {
	table  string
	cache  string
	sqlite string
}

// openWordEncoder builds the word encoder variant the flags select: the raw
// two-file table, a JSON cache export, or a SQLite store.
func openWordEncoder(ctx context.Context, cfg *config.Config, flags wordTableFlags) (ports.WordEncoder, error) {
	table := flags.table
	cache := flags.cache
	if table == "" && cache == "" && flags.sqlite == "" {
		table = cfg.WordTable.Path
		cache = cfg.WordTable.CachePath
	}

	switch {
	case cache != "":
		return wordtable.LoadCache(cache)
	case flags.sqlite != "":
		store, err := sqlitestore.Open(flags.sqlite)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		vectors, err := store.LoadVectors(ctx)
		if err != nil {
			return nil, err
		}
		return wordtable.NewCachedTable(vectors)
	case table != "":
		return wordtable.Load(table, cfg.WordTable.Track)
	default:
		return nil, errors.New("no word table configured (use --table, --cache or --sqlite)")
	}
}
