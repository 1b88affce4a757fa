package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/slanglab/slangvec/internal/infrastructure/config"
)

type lookupFlags struct {
	wordTableFlags
	norm bool
}

func newLookupCmd() *cobra.Command {
	var flags lookupFlags

	cmd := &cobra.Command{
		Use:   "lookup WORD",
		Short: "Look up the embedding vector for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.table, "table", "t", "", "Raw table base path (<base>_word.txt, <base>_embed.npy)")
	cmd.Flags().StringVar(&flags.cache, "cache", "", "JSON cache export to load instead of a raw table")
	cmd.Flags().StringVar(&flags.sqlite, "sqlite", "", "SQLite vector store to load instead of a raw table")
	cmd.Flags().BoolVar(&flags.norm, "norm", false, "L2-normalize the vector")

	return cmd
}

func runLookup(cmd *cobra.Command, word string, flags lookupFlags) error {
	ctx := cmd.Context()

	return withConfig(func(cfg *config.Config) error {
		enc, err := openWordEncoder(ctx, cfg, flags.wordTableFlags)
		if err != nil {
			return err
		}

		var vec []float32
		if flags.norm {
			vec, err = enc.NormEmbed(word)
		} else {
			vec, err = enc.EmbedWord(word)
		}
		if err != nil {
			return err
		}

		data, err := json.Marshal(vec)
		if err != nil {
			return fmt.Errorf("serializing vector: %w", err)
		}
		fmt.Println(string(data))
		return nil
	})
}
