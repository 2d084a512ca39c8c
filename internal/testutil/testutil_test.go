package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/askdoc/internal/config"
	"github.com/at-ishikawa/askdoc/internal/history"
)

func TestSetupTestConfig(t *testing.T) {
	t.Setenv("ASKDOC_BASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "http://127.0.0.1:18000")

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)
	info, err := os.Stat(filepath.Join(tmpDir, "exports"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:18000", cfg.Client.BaseURL)
	assert.Equal(t, filepath.Join(tmpDir, "qa_history.yml"), cfg.History.YAMLFile)
	assert.Empty(t, cfg.OpenAI.APIKey)
}

func TestCreateHistoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa_history.yml")
	CreateHistoryFile(t, path, [2]string{"Q1", "A1"}, [2]string{"Q2", "A2"})

	records, err := history.NewYAMLRepository(path).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Q2", records[0].Question)
	assert.Equal(t, "Q1", records[1].Question)
}
