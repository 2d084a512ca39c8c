// Package testutil provides shared test helpers for creating config files and history fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/askdoc/internal/history"
)

// SetupTestConfig creates a config file whose client points at baseURL and
// whose server state lives under tmpDir. Returns the path to the config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "exports"), 0755))

	configContent := fmt.Sprintf(`client:
  base_url: %s
  timeout_seconds: 5
server:
  port: 18000
document:
  pdf_path: %s
history:
  storage: yaml
  yaml_file: %s
`,
		baseURL,
		filepath.Join(tmpDir, "lecture.pdf"),
		filepath.Join(tmpDir, "qa_history.yml"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateHistoryFile stores exchanges, given oldest first, in a YAML history file.
func CreateHistoryFile(t *testing.T, path string, exchanges ...[2]string) {
	t.Helper()

	repository := history.NewYAMLRepository(path)
	for _, exchange := range exchanges {
		require.NoError(t, repository.Create(context.Background(), &history.Record{
			Question: exchange[0],
			Answer:   exchange[1],
		}))
	}
}
