package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/matrix-core/internal/application/handlers"
	"github.com/ersonp/matrix-core/internal/infrastructure/config"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Embed and index every entity for semantic search",
		Long:  "Serializes every universe, space, cluster and asset, embeds the texts and upserts them into the configured Qdrant collection.",
		RunE:  runIndex,
	}
}

func runIndex(cmd *cobra.Command, args []string) error {
	return withDatasets(func(cfg *config.Config, basePath string, ds *datasets) error {
		return withSearchHandler(cfg, func(h *handlers.SearchHandler) error {
			count, err := h.HandleIndex(cmd.Context(), ds.Datasets)
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to index.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d entities into %q.\n", count, cfg.Qdrant.Collection)
			return nil
		})
	})
}

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find entities by description",
		Long:  "Semantic lookup over the indexed entities. Useful when a token doesn't resolve and the exact id or name is unknown.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultSearchLimit, "Maximum number of results")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit int) error {
	cfg, err := loadConfigHere()
	if err != nil {
		return err
	}

	return withSearchHandler(cfg, func(h *handlers.SearchHandler) error {
		points, err := h.HandleSearch(cmd.Context(), query, limit)
		if err != nil {
			return err
		}

		if len(points) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
			return nil
		}

		for _, p := range points {
			fmt.Fprintf(cmd.OutOrStdout(), "%.3f  %-10s %-6s %s\n", p.Score, p.Kind, p.Key, p.Name)
		}
		return nil
	})
}
