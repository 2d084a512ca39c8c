package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBRepository_Create(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 30, 45, 500, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      Record
		wantErr   bool
	}{
		{
			name: "stores the record and sets its id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO qa_history \\(question, answer, created_at\\) VALUES \\(\\?, \\?, \\?\\)").
					WithArgs("What is 2+2?", "4", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			want: Record{
				ID:        7,
				Question:  "What is 2+2?",
				Answer:    "4",
				CreatedAt: time.Date(2025, 1, 1, 12, 30, 45, 0, time.UTC),
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO qa_history").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			repo.now = func() time.Time { return now }
			tt.setupMock(mock)

			record := Record{Question: "What is 2+2?", Answer: "4"}
			err := repo.Create(context.Background(), &record)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, record)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindAll(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Record
		wantErr   bool
	}{
		{
			name: "returns records most recent first",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "question", "answer", "created_at"}).
					AddRow(2, "Q2", "A2", now).
					AddRow(1, "Q1", "A1", now)
				mock.ExpectQuery("SELECT id, question, answer, created_at FROM qa_history ORDER BY id DESC").
					WillReturnRows(rows)
			},
			want: []Record{
				{ID: 2, Question: "Q2", Answer: "A2", CreatedAt: now},
				{ID: 1, Question: "Q1", Answer: "A1", CreatedAt: now},
			},
		},
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, question, answer, created_at FROM qa_history").
					WillReturnRows(sqlmock.NewRows([]string{"id", "question", "answer", "created_at"}))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, question, answer, created_at FROM qa_history").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindAll(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
