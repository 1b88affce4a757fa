package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slanglab/slangvec/internal/domain/services"
	"github.com/slanglab/slangvec/internal/infrastructure/config"
	"github.com/slanglab/slangvec/internal/infrastructure/vectordb/qdrant"
)

type searchFlags struct {
	collection string
	limit      int
	model      string
	name       string
}

func newSearchCmd() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find stored definition vectors similar to a query sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.collection, "collection", "", "Collection name override")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", services.DefaultSearchLimit, "Maximum number of results")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Embedding model override")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Encoder display name override")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, flags searchFlags) error {
	ctx := cmd.Context()

	return withConfig(func(cfg *config.Config) error {
		enc, err := buildEncoder(cfg, flags.model, flags.name)
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

		results, err := services.NewSearchService(enc, repo).Search(ctx, query, flags.limit)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		for _, res := range results {
			fmt.Printf("%s[%d]\n", res.Split, res.Position)
		}
		return nil
	})
}
