package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/askdoc/internal/export"
)

const exportTitle = "askdoc history"

func newExportCommand() *cobra.Command {
	var (
		outputPath string
		asPDF      bool
	)
	format := export.FormatMarkdown

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the question history to markdown or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if asPDF {
				format = export.FormatPDF
			}
			outputPath = exportPath(outputPath, format)

			client := newAPIClient(cfg.Client)
			defer func() {
				_ = client.Close()
			}()

			exporter := export.NewExporter(client, cfg.Exports.Template, exportTitle)
			path, err := exporter.Export(cmd.Context(), outputPath, format)
			if err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported the history to %s\n", path)
			return nil
		},
	}
	command.Flags().StringVarP(&outputPath, "output", "o", "", "output file path")
	command.Flags().Var(&format, "format", "output format: markdown or pdf")
	command.Flags().BoolVar(&asPDF, "pdf", false, "export as PDF, same as --format pdf")
	_ = command.MarkFlagRequired("output")

	return command
}

// exportPath gives outputPath the extension of format.
func exportPath(outputPath string, format export.Format) string {
	ext := strings.ToLower(filepath.Ext(outputPath))
	switch format {
	case export.FormatPDF:
		if ext != ".pdf" {
			return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".pdf"
		}
	default:
		if ext != ".md" && ext != ".markdown" {
			return outputPath + ".md"
		}
	}
	return outputPath
}
