package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/askdoc/internal/cli"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show previously asked questions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			client := newAPIClient(cfg.Client)
			defer func() {
				_ = client.Close()
			}()

			qa.NewLoader(client, qa.NewHistory(), cli.NewTerminalView(cmd.OutOrStdout())).Load(cmd.Context())
			return nil
		},
	}
}
