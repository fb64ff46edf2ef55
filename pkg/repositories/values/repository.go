package values

import (
	"context"
	"path/filepath"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/internal/types"
)

// New opens the store named by storeType under dataDir
func New(ctx context.Context, storeType, dataDir string, logger *logging.Logger) (Repository, error) {
	switch storeType {
	case StoreMemory, "":
		return NewMemoryRepository(), nil
	case StoreSQLite:
		repo, err := NewSQLiteRepository(ctx, filepath.Join(dataDir, DefaultDatabaseFile), logger)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case StoreFile:
		repo, err := NewFileRepository(filepath.Join(dataDir, "tables"))
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, types.Errorf(types.ErrInvalidArgument, "unknown store type %q", storeType)
	}
}
