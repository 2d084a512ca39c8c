package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/askdoc/internal/bootstrap"
	"github.com/at-ishikawa/askdoc/internal/config"
	"github.com/at-ishikawa/askdoc/internal/database"
	"github.com/at-ishikawa/askdoc/internal/document"
	"github.com/at-ishikawa/askdoc/internal/history"
	"github.com/at-ishikawa/askdoc/schemas"
)

// openHistoryRepository opens the configured history storage. A MySQL
// database is migrated before use and closed on shutdown.
func openHistoryRepository(ctx context.Context, app *bootstrap.App, cfg *config.Config) (history.Repository, error) {
	switch cfg.History.Storage {
	case config.HistoryStorageMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open() > %w", err)
		}
		app.AddCloser("database", db)

		if err := database.Migrate(ctx, db, schemas.Migrations, schemas.MigrationsDir); err != nil {
			return nil, fmt.Errorf("database.Migrate() > %w", err)
		}
		return history.NewDBRepository(db), nil
	case config.HistoryStorageYAML:
		return history.NewYAMLRepository(cfg.History.YAMLFile), nil
	default:
		return nil, fmt.Errorf("unknown history storage: %s", cfg.History.Storage)
	}
}

// loadCorpus loads the document. The server still starts without it and
// answers every question with answer.NoDocumentAnswer.
func loadCorpus(cfg config.DocumentConfig) *document.Corpus {
	corpus, err := document.Load(cfg.PDFPath, cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		slog.Default().Warn("failed to load the document",
			slog.String("path", cfg.PDFPath),
			slog.Any("error", err),
		)
		return document.NewCorpus(nil)
	}
	slog.Default().Info("loaded the document",
		slog.String("path", cfg.PDFPath),
		slog.Int("chunks", corpus.Len()),
	)
	return corpus
}
