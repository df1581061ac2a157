// Package main provides the entry point for the matrix CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var opts composeOptions

	rootCmd := &cobra.Command{
		Use:   "matrix [tokens...]",
		Short: "Compose generation briefs from the matrix datasets",
		Long: `Matrix resolves free-form tokens against the universes, spaces and
assets datasets and composes a generation brief for a text model.

Tokens accept ids or display names, case-insensitively; "+" and ","
both separate tokens. With no tokens, the known entities are listed.

Examples:
  matrix
  matrix U-04
  matrix S-11
  matrix A-13,A-09
  matrix U-04 A-09,A-10
  matrix S-11 + A-03`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, args, opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.send, "send", false, "Dispatch the composed brief to the configured model")
	rootCmd.Flags().BoolVar(&opts.noPager, "no-pager", false, "Print the brief instead of paging it")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Override the output file")

	rootCmd.AddCommand(
		newInitCmd(),
		newBirthdaysCmd(),
		newIndexCmd(),
		newSearchCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
