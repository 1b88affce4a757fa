// Package main provides the entry point for the slangvec CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalConfig string
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "slangvec",
		Short:   "Word and sentence embeddings for slang-definition datasets",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", defaultConfigFile(), "Config file")

	rootCmd.AddCommand(
		newEncodeCmd(),
		newLookupCmd(),
		newCacheCmd(),
		newPushCmd(),
		newSearchCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
