package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slanglab/slangvec/internal/domain/entities"
	"github.com/slanglab/slangvec/internal/domain/services"
	"github.com/slanglab/slangvec/internal/infrastructure/config"
	"github.com/slanglab/slangvec/internal/infrastructure/dataset"
	"github.com/slanglab/slangvec/internal/infrastructure/wordtable"
	"github.com/slanglab/slangvec/internal/infrastructure/wordtable/sqlitestore"
)

type cacheBuildFlags struct {
	table   string
	dataset string
	out     string
	sqlite  string
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Build reduced word tables from usage caches",
	}

	cmd.AddCommand(newCacheBuildCmd())

	return cmd
}

func newCacheBuildCmd() *cobra.Command {
	var flags cacheBuildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the table subset referenced by a dataset",
		Long: "Looks up every word a dataset references in the full embedding table and " +
			"exports the resulting {word: vector} subset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheBuild(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.table, "table", "t", "", "Raw table base path (required)")
	cmd.Flags().StringVarP(&flags.dataset, "dataset", "d", "", "Dataset JSON file (required)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output JSON cache file")
	cmd.Flags().StringVar(&flags.sqlite, "sqlite", "", "Output SQLite vector store")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func runCacheBuild(cmd *cobra.Command, flags cacheBuildFlags) error {
	if flags.out == "" && flags.sqlite == "" {
		return errors.New("at least one of --out and --sqlite is required")
	}

	ctx := cmd.Context()

	return withConfig(func(*config.Config) error {
		ds, err := dataset.Load(flags.dataset)
		if err != nil {
			return err
		}

		table, err := wordtable.Load(flags.table, true)
		if err != nil {
			return err
		}

		svc := services.NewCacheService(table)
		words := datasetWords(ds)

		var reduced map[string][]float32
		if flags.out != "" {
			reduced, err = svc.Export(words, flags.out)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d words to %s\n", len(reduced), flags.out)
		} else {
			reduced, err = svc.Build(words)
			if err != nil {
				return err
			}
		}

		if flags.sqlite != "" {
			if err := saveToSQLite(ctx, flags.sqlite, reduced); err != nil {
				return err
			}
			fmt.Printf("Exported %d words to %s\n", len(reduced), flags.sqlite)
		}

		return nil
	})
}

// datasetWords returns every word the dataset references: the conventional
// vocabulary plus the slang record words, deduplicated in first-seen order.
func datasetWords(ds *entities.Dataset) []string {
	seen := make(map[string]struct{})
	var words []string
	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	for _, w := range ds.Vocab {
		add(w)
	}
	for _, rec := range ds.Slang {
		add(rec.Word)
	}
	return words
}

func saveToSQLite(ctx context.Context, path string, vectors map[string][]float32) error {
	store, err := sqlitestore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	return store.SaveVectors(ctx, vectors)
}
