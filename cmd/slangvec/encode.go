package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slanglab/slangvec/internal/application/handlers"
	"github.com/slanglab/slangvec/internal/infrastructure/config"
	"github.com/slanglab/slangvec/internal/infrastructure/dataset"
)

type encodeFlags struct {
	dataset  string
	splits   string
	out      string
	model    string
	name     string
	skipTest bool
}

func newEncodeCmd() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode dataset definition sentences into per-split vectors",
		Long: "Encodes the slang definition sentences of the train/dev (and optionally test) " +
			"splits plus every conventional definition, and writes one .npy matrix per split.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dataset, "dataset", "d", "", "Dataset JSON file (required)")
	cmd.Flags().StringVarP(&flags.splits, "splits", "s", "", "Split-index JSON file (required)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output directory (required)")
	cmd.Flags().StringVarP(&flags.model, "model", "m", "", "Embedding model override")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Encoder display name override")
	cmd.Flags().BoolVar(&flags.skipTest, "skip-test", false, "Do not encode the test split")
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("splits")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runEncode(cmd *cobra.Command, flags encodeFlags) error {
	ctx := cmd.Context()

	return withConfig(func(cfg *config.Config) error {
		ds, err := dataset.Load(flags.dataset)
		if err != nil {
			return err
		}

		splits, err := dataset.LoadSplits(flags.splits, len(ds.Slang))
		if err != nil {
			return err
		}

		enc, err := buildEncoder(cfg, flags.model, flags.name)
		if err != nil {
			return err
		}

		handler := handlers.NewEncodeHandler(enc)
		manifest, err := handler.Encode(ctx, ds, splits, !flags.skipTest, flags.out)
		if err != nil {
			return err
		}

		total := 0
		for _, sf := range manifest.Splits {
			total += sf.Count
		}
		fmt.Printf("Encoded %d sentences (dim %d) into %s\n", total, manifest.Dim, flags.out)
		return nil
	})
}
