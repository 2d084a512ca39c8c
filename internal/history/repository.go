// Package history stores answered questions on the server.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Record is one stored question and its answer.
type Record struct {
	ID        int64     `db:"id" yaml:"id"`
	Question  string    `db:"question" yaml:"question"`
	Answer    string    `db:"answer" yaml:"answer"`
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history

// Repository defines operations for managing stored exchanges.
type Repository interface {
	// Create stores a record and fills in its ID and CreatedAt.
	Create(ctx context.Context, record *Record) error
	// FindAll returns every record, most recent first.
	FindAll(ctx context.Context) ([]Record, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ Repository = (*DBRepository)(nil)

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db, now: time.Now}
}

func (r *DBRepository) Create(ctx context.Context, record *Record) error {
	createdAt := r.now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO qa_history (question, answer, created_at) VALUES (?, ?, ?)",
		record.Question, record.Answer, createdAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert qa_history) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = id
	record.CreatedAt = createdAt
	return nil
}

func (r *DBRepository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.db.SelectContext(ctx, &records,
		"SELECT id, question, answer, created_at FROM qa_history ORDER BY id DESC"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(qa_history) > %w", err)
	}
	return records, nil
}
