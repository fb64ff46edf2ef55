package values

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/db/migrations"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// DefaultDatabaseFile is the sqlite file name used under the data directory
const DefaultDatabaseFile = "values.db"

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db     *sql.DB
	logger *logging.Logger
}

// OpenDB opens the sqlite database, creating its directory
func OpenDB(dbPath string) (*sql.DB, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if dbPath == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// NewSQLiteRepository opens the database at dbPath and applies pending migrations
func NewSQLiteRepository(ctx context.Context, dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = logging.Default
	}

	db, err := OpenDB(dbPath)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "open value store", err)
	}

	migrator := migrations.NewMigrator(db, migrations.Files(), logger)
	if _, err := migrator.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "apply migrations", err)
	}

	return &SQLiteRepository{db: db, logger: logger}, nil
}

// SaveTable replaces the table inside one transaction and stamps it with a new checkpoint id
func (r *SQLiteRepository) SaveTable(ctx context.Context, name string, entries []*entities.ValueEntry) error {
	if err := validateName(name); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "begin transaction", err)
	}
	defer tx.Rollback()

	checkpoint := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO value_tables (name, checkpoint_id, entries, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name)
		DO UPDATE SET checkpoint_id = excluded.checkpoint_id, entries = excluded.entries, updated_at = CURRENT_TIMESTAMP`,
		name, checkpoint, len(entries))
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "upsert value table", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM value_entries WHERE table_name = ?`, name); err != nil {
		return types.WrapError(types.ErrDatabaseError, "clear value entries", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO value_entries (table_name, total, dealer, usable_ace, action, value)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(table_name, total, dealer, usable_ace, action)
		DO UPDATE SET value = excluded.value`)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "prepare insert", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if _, err := stmt.ExecContext(ctx, name, entry.Total, entry.Dealer, entry.UsableAce, entry.Action, entry.Value); err != nil {
			return types.WrapError(types.ErrDatabaseError, "insert value entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.ErrDatabaseError, "commit value table", err)
	}

	r.logger.Debug("Saved value table %s with %d entries (checkpoint %s)", name, len(entries), checkpoint)
	return nil
}

// GetTable retrieves a table ordered by state and action
func (r *SQLiteRepository) GetTable(ctx context.Context, name string) ([]*entities.ValueEntry, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM value_tables WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "look up value table", err)
	}
	if exists == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT total, dealer, usable_ace, action, value
		FROM value_entries
		WHERE table_name = ?
		ORDER BY total, dealer, usable_ace, action`, name)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "query value entries", err)
	}
	defer rows.Close()

	entries := make([]*entities.ValueEntry, 0)
	for rows.Next() {
		entry := &entities.ValueEntry{}
		if err := rows.Scan(&entry.Total, &entry.Dealer, &entry.UsableAce, &entry.Action, &entry.Value); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "scan value entry", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "read value entries", err)
	}
	return entries, nil
}

func (r *SQLiteRepository) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM value_tables ORDER BY name`)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "list value tables", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "scan table name", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// CheckpointID returns the id stamped on the last save of a table
func (r *SQLiteRepository) CheckpointID(ctx context.Context, name string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT checkpoint_id FROM value_tables WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", types.WrapError(types.ErrDatabaseError, "look up checkpoint", err)
	}
	return id, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
