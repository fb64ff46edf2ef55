package values

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

const fileExt = ".json"

// document is the on-disk form of one table
type document struct {
	Name      string                 `json:"name"`
	UpdatedAt time.Time              `json:"updated_at"`
	Entries   []*entities.ValueEntry `json:"entries"`
}

// FileRepository implements Repository with one JSON document per table under a directory
type FileRepository struct {
	dir string
	mu  sync.RWMutex
}

// NewFileRepository creates the directory if needed
func NewFileRepository(dir string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &FileRepository{dir: dir}, nil
}

func (r *FileRepository) path(name string) string {
	return filepath.Join(r.dir, name+fileExt)
}

// SaveTable writes the table to a temporary file and renames it into place
func (r *FileRepository) SaveTable(ctx context.Context, name string, entries []*entities.ValueEntry) error {
	if err := validateName(name); err != nil {
		return err
	}

	data, err := json.MarshalIndent(document{
		Name:      name,
		UpdatedAt: time.Now().UTC(),
		Entries:   copyEntries(entries),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp := r.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, r.path(name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// GetTable reads a table document
func (r *FileRepository) GetTable(ctx context.Context, name string) ([]*entities.ValueEntry, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode table %s: %w", name, err)
	}
	return doc.Entries, nil
}

func (r *FileRepository) ListTables(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(file.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

func (r *FileRepository) Close() error {
	return nil
}
