package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_qa "github.com/at-ishikawa/askdoc/internal/mocks/qa"
	"github.com/at-ishikawa/askdoc/internal/qa"
)

func TestFormat_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    Format
		wantErr bool
	}{
		{value: "markdown", want: FormatMarkdown},
		{value: "md", want: FormatMarkdown},
		{value: "PDF", want: FormatPDF},
		{value: "html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			format := FormatMarkdown
			err := format.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, FormatMarkdown, format)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
			assert.Equal(t, "format", format.Type())
		})
	}
}

func TestExporter_Export(t *testing.T) {
	exchanges := []qa.Exchange{
		{Question: "What is 2+2?", Answer: "4"},
	}

	tests := []struct {
		name       string
		outputName string
		format     Format
		setupMock  func(m *mock_qa.MockAPI)
		wantFile   string
		wantFiles  []string
		wantErr    bool
	}{
		{
			name:       "markdown",
			outputName: "history.md",
			format:     FormatMarkdown,
			setupMock: func(m *mock_qa.MockAPI) {
				m.EXPECT().History(gomock.Any()).Return(exchanges, nil)
			},
			wantFile:  "history.md",
			wantFiles: []string{"history.md"},
		},
		{
			name:       "pdf keeps the markdown next to it",
			outputName: filepath.Join("exports", "history.pdf"),
			format:     FormatPDF,
			setupMock: func(m *mock_qa.MockAPI) {
				m.EXPECT().History(gomock.Any()).Return(exchanges, nil)
			},
			wantFile:  filepath.Join("exports", "history.pdf"),
			wantFiles: []string{filepath.Join("exports", "history.md"), filepath.Join("exports", "history.pdf")},
		},
		{
			name:       "history unavailable",
			outputName: "history.md",
			format:     FormatMarkdown,
			setupMock: func(m *mock_qa.MockAPI) {
				m.EXPECT().History(gomock.Any()).Return(nil, qa.ErrHistoryUnavailable)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock_qa.NewMockAPI(ctrl)
			tt.setupMock(api)

			dir := t.TempDir()
			exporter := NewExporter(api, "", "askdoc history")
			exporter.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }

			got, err := exporter.Export(context.Background(), filepath.Join(dir, tt.outputName), tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, qa.ErrHistoryUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), got)
			for _, name := range tt.wantFiles {
				assert.FileExists(t, filepath.Join(dir, name))
			}
		})
	}
}

func TestExporter_Export_MarkdownContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_qa.NewMockAPI(ctrl)
	api.EXPECT().History(gomock.Any()).Return([]qa.Exchange{
		{Question: "Q2", Answer: "A2"},
		{Question: "Q1", Answer: "A1"},
	}, nil)

	templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ range .Exchanges }}{{ .Question }}:{{ .Answer }}\n{{ end }}"), 0644))

	outputPath := filepath.Join(t.TempDir(), "history.md")
	_, err := NewExporter(api, templatePath, "askdoc history").Export(context.Background(), outputPath, FormatMarkdown)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "Q2:A2\nQ1:A1\n", string(content))
}
