package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/askdoc/internal/cli"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

func newAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question, or start an interactive session without one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := newAPIClient(cfg.Client)
			defer func() {
				_ = client.Close()
			}()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			history := qa.NewHistory()
			view := cli.NewTerminalView(out)
			qa.NewLoader(client, history, view).Load(ctx)
			controller := qa.NewController(client, history, view)

			if len(args) > 0 {
				controller.Submit(ctx, strings.Join(args, " "))
				return nil
			}

			_, _ = fmt.Fprintln(out, "Ask questions about the document. Type 'quit' to exit.")
			askCLI := cli.NewAskCLI(controller, cmd.InOrStdin(), out)
			return askCLI.Run(ctx, askCLI)
		},
	}
}
