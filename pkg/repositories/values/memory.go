package values

import (
	"context"
	"sort"
	"sync"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu     sync.RWMutex
	tables map[string][]*entities.ValueEntry
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tables: make(map[string][]*entities.ValueEntry),
	}
}

// SaveTable stores a copy of the entries
func (r *MemoryRepository) SaveTable(ctx context.Context, name string, entries []*entities.ValueEntry) error {
	if err := validateName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables[name] = copyEntries(entries)
	return nil
}

// GetTable retrieves a copy of a stored table
func (r *MemoryRepository) GetTable(ctx context.Context, name string) ([]*entities.ValueEntry, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, exists := r.tables[name]
	if !exists {
		return nil, nil
	}
	return copyEntries(entries), nil
}

func (r *MemoryRepository) ListTables(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
