package values

import (
	"context"
	"errors"
	"regexp"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// Store types accepted by New
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

var (
	ErrInvalidTableName = errors.New("invalid table name")

	tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// Repository persists the value tables of learning strategies, keyed by table name
type Repository interface {
	// SaveTable replaces the stored table with entries
	SaveTable(ctx context.Context, name string, entries []*entities.ValueEntry) error
	// GetTable returns the stored entries, or nil when the table does not exist
	GetTable(ctx context.Context, name string) ([]*entities.ValueEntry, error)
	// ListTables returns the stored table names in order
	ListTables(ctx context.Context) ([]string, error)

	// Close closes any resources used by the repository
	Close() error
}

func validateName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return ErrInvalidTableName
	}
	return nil
}

func copyEntries(entries []*entities.ValueEntry) []*entities.ValueEntry {
	out := make([]*entities.ValueEntry, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		e := *entry
		out = append(out, &e)
	}
	return out
}
