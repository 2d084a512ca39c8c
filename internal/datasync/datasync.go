// Package datasync copies stored question history between repositories,
// e.g. from the YAML file into MySQL.
package datasync

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/at-ishikawa/askdoc/internal/history"
)

// ImportResult tracks counts for an import.
type ImportResult struct {
	New     int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer writes records read from another repository into its destination.
type Importer struct {
	destination history.Repository
	writer      io.Writer
}

func NewImporter(destination history.Repository, writer io.Writer) *Importer {
	return &Importer{
		destination: destination,
		writer:      writer,
	}
}

type recordKey struct {
	question string
	answer   string
}

// Import copies every source record oldest first, so the destination keeps
// the same most-recent-first order. Records whose question and answer already
// exist in the destination are skipped.
func (imp *Importer) Import(ctx context.Context, source history.Repository, opts ImportOptions) (*ImportResult, error) {
	records, err := source.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.FindAll() > %w", err)
	}
	slices.Reverse(records)

	existing, err := imp.destination.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("destination.FindAll() > %w", err)
	}
	seen := make(map[recordKey]bool, len(existing))
	for _, record := range existing {
		seen[recordKey{question: record.Question, answer: record.Answer}] = true
	}

	var result ImportResult
	for _, record := range records {
		key := recordKey{question: record.Question, answer: record.Answer}
		if seen[key] {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", record.Question)
			result.Skipped++
			continue
		}
		seen[key] = true

		if !opts.DryRun {
			if err := imp.destination.Create(ctx, &history.Record{
				Question: record.Question,
				Answer:   record.Answer,
			}); err != nil {
				return nil, fmt.Errorf("destination.Create() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q\n", record.Question)
		result.New++
	}

	return &result, nil
}
