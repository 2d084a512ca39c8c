package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/askdoc/internal/bootstrap"
	"github.com/at-ishikawa/askdoc/internal/datasync"
	"github.com/at-ishikawa/askdoc/internal/history"
)

func newImportHistoryCommand() *cobra.Command {
	var (
		sourceFile string
		dryRun     bool
	)

	command := &cobra.Command{
		Use:   "import-history",
		Short: "Import a YAML history file into the configured history storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return importHistory(cmd.Context(), cmd.OutOrStdout(), sourceFile, datasync.ImportOptions{DryRun: dryRun})
		},
	}
	command.Flags().StringVar(&sourceFile, "from", "", "YAML history file to import")
	command.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be imported without writing")
	_ = command.MarkFlagRequired("from")

	return command
}

func importHistory(ctx context.Context, out io.Writer, sourceFile string, opts datasync.ImportOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	app := bootstrap.New(bootstrap.DefaultShutdownTimeout)
	return app.Run(ctx, func(ctx context.Context) error {
		destination, err := openHistoryRepository(ctx, app, cfg)
		if err != nil {
			return fmt.Errorf("openHistoryRepository() > %w", err)
		}

		result, err := datasync.NewImporter(destination, out).Import(ctx, history.NewYAMLRepository(sourceFile), opts)
		if err != nil {
			return fmt.Errorf("importer.Import() > %w", err)
		}
		_, _ = fmt.Fprintf(out, "Imported %d exchanges, skipped %d\n", result.New, result.Skipped)
		return nil
	})
}
