package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/matrix-core/internal/application/handlers"
	"github.com/ersonp/matrix-core/internal/domain/entities"
	"github.com/ersonp/matrix-core/internal/infrastructure/config"
	llm "github.com/ersonp/matrix-core/internal/infrastructure/llm/openai"
	"github.com/ersonp/matrix-core/internal/infrastructure/output"
)

// composeOptions holds the root command flags.
type composeOptions struct {
	send    bool
	noPager bool
	output  string
}

// runCompose is the root command: no tokens shows the dashboard, tokens
// compose a brief, write it out and display (or dispatch) it.
func runCompose(cmd *cobra.Command, args []string, opts composeOptions) error {
	return withDatasets(func(cfg *config.Config, basePath string, ds *datasets) error {
		result, err := handlers.NewComposeHandler().Handle(ds.Datasets, args)
		if err != nil {
			return err
		}

		for _, tok := range result.Unmatched {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: asset not found: %s\n", tok)
		}

		if result.Mode == entities.ModeList {
			printDashboard(cmd.OutOrStdout(), ds)
			return nil
		}

		outPath := cfg.OutputPath(basePath)
		if opts.output != "" {
			outPath = opts.output
		}

		sink := output.NewSink(outPath, cfg.PagerEnabled() && !opts.noPager)
		if err := sink.Write(result.Prompt); err != nil {
			return err
		}

		if opts.send {
			return dispatchPrompt(cmd, cfg, result.Prompt)
		}

		return sink.Display(result.Prompt)
	})
}

// dispatchPrompt sends the brief to the configured model and prints the
// narrative response.
func dispatchPrompt(cmd *cobra.Command, cfg *config.Config, prompt string) error {
	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}

	response, err := handlers.NewDispatchHandler(client).HandleDispatch(cmd.Context(), prompt)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), response)
	return nil
}
