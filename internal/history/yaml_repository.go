package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLRepository keeps records in a single YAML file, oldest first.
type YAMLRepository struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

var _ Repository = (*YAMLRepository)(nil)

func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path, now: time.Now}
}

func (r *YAMLRepository) Create(ctx context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		return err
	}

	record.ID = 1
	if len(records) > 0 {
		record.ID = records[len(records)-1].ID + 1
	}
	record.CreatedAt = r.now().UTC().Truncate(time.Second)
	records = append(records, *record)

	return r.write(records)
}

func (r *YAMLRepository) FindAll(ctx context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		return nil, err
	}
	slices.Reverse(records)
	return records, nil
}

func (r *YAMLRepository) read() ([]Record, error) {
	contents, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}

	var records []Record
	if err := yaml.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", r.path, err)
	}
	return records, nil
}

func (r *YAMLRepository) write(records []Record) error {
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	contents, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}

	// replace the file atomically
	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", r.path, err)
	}
	return nil
}
