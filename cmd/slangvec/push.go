package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/slanglab/slangvec/internal/domain/entities"
	"github.com/slanglab/slangvec/internal/domain/ports"
	"github.com/slanglab/slangvec/internal/infrastructure/config"
	"github.com/slanglab/slangvec/internal/infrastructure/vectordb/qdrant"
	"github.com/slanglab/slangvec/internal/infrastructure/vectorio"
)

// DefaultPushBatchSize is the number of points sent per upsert.
const DefaultPushBatchSize = 64

type pushFlags struct {
	dir        string
	collection string
	batchSize  int
}

func newPushCmd() *cobra.Command {
	var flags pushFlags

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload encoded definition vectors to Qdrant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "Encoded output directory (required)")
	cmd.Flags().StringVar(&flags.collection, "collection", "", "Collection name override")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", DefaultPushBatchSize, "Points per upsert")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func runPush(cmd *cobra.Command, flags pushFlags) error {
	ctx := cmd.Context()

	return withConfig(func(cfg *config.Config) error {
		manifest, err := vectorio.ReadManifest(flags.dir)
		if err != nil {
			return err
		}

		qdrantCfg := cfg.Qdrant
		if flags.collection != "" {
			qdrantCfg.Collection = flags.collection
		}

		repo, err := qdrant.NewRepository(qdrantCfg)
		if err != nil {
			return fmt.Errorf("creating qdrant repository: %w", err)
		}
		defer repo.Close()

		if err := repo.EnsureCollection(ctx, uint64(manifest.Dim)); err != nil {
			return err
		}

		pushed, stored, err := pushVectors(ctx, repo, manifest, flags.dir, flags.batchSize)
		if err != nil {
			return err
		}

		fmt.Printf("Pushed %d vectors to collection %s (%d stored)\n", pushed, qdrantCfg.Collection, stored)
		return nil
	})
}

// pushVectors uploads every split in the manifest, in split-name order, in
// batches of batchSize. It returns the number of vectors pushed and the
// collection's point count after the upload.
func pushVectors(ctx context.Context, db ports.VectorDB, manifest *vectorio.Manifest, dir string, batchSize int) (int, uint64, error) {
	if batchSize <= 0 {
		batchSize = DefaultPushBatchSize
	}

	names := make([]string, 0, len(manifest.Splits))
	for name := range manifest.Splits {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, split := range names {
		vectors, err := vectorio.ReadSplit(dir, manifest.Splits[split])
		if err != nil {
			return total, 0, fmt.Errorf("reading %s split: %w", split, err)
		}

		batch := make([]entities.DefinitionVector, 0, batchSize)
		for i, vec := range vectors {
			batch = append(batch, entities.DefinitionVector{
				Split:     split,
				Position:  i,
				Embedding: vec,
			})
			if len(batch) == batchSize {
				if err := db.SaveBatch(ctx, batch); err != nil {
					return total, 0, fmt.Errorf("saving %s split: %w", split, err)
				}
				total += len(batch)
				batch = batch[:0]
			}
		}
		if len(batch) > 0 {
			if err := db.SaveBatch(ctx, batch); err != nil {
				return total, 0, fmt.Errorf("saving %s split: %w", split, err)
			}
			total += len(batch)
		}
	}

	stored, err := db.Count(ctx)
	if err != nil {
		return total, 0, fmt.Errorf("counting stored vectors: %w", err)
	}

	return total, stored, nil
}
