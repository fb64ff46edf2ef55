package main

import (
	"fmt"
	"path/filepath"

	"github.com/fadedpez/blackjacksim/pkg/db/migrations"
	"github.com/fadedpez/blackjacksim/pkg/repositories/values"
)

// MigrateCmd applies the embedded migrations to the sqlite value store
type MigrateCmd struct {
	DB     string `help:"Path to the SQLite database (defaults to <data-dir>/values.db)" type:"path"`
	DryRun bool   `help:"List pending migrations without applying them"`
}

func (c *MigrateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	path := c.DB
	if path == "" {
		path = filepath.Join(cfg.DataDir, values.DefaultDatabaseFile)
	}

	db, err := values.OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	migrator := migrations.NewMigrator(db, migrations.Files(), logger)
	if c.DryRun {
		pending, err := migrator.Pending(ctx)
		if err != nil {
			return err
		}
		for _, m := range pending {
			fmt.Printf("%s  %s\n", m.Version, m.Description)
		}
		logger.Info("%d pending migrations in %s", len(pending), path)
		return nil
	}

	applied, err := migrator.MigrateUp(ctx)
	if err != nil {
		return err
	}
	logger.Info("Applied %d migrations to %s", applied, path)
	return nil
}
