package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/repositories/values"
)

// DefaultCheckpointInterval is used when no interval is configured
const DefaultCheckpointInterval = 30 * time.Second

// Snapshotter exposes a consistent copy of a value table
type Snapshotter interface {
	Snapshot() []*entities.ValueEntry
}

// CheckpointScheduler periodically saves a learning strategy's value table
type CheckpointScheduler struct {
	scheduler *Scheduler
	repo      values.Repository
	source    Snapshotter
	table     string
	interval  time.Duration
	logger    *logging.Logger
	saves     atomic.Int64
}

// NewCheckpointScheduler creates a checkpoint scheduler on top of s
func NewCheckpointScheduler(s *Scheduler, repo values.Repository, source Snapshotter, table string, interval time.Duration, logger *logging.Logger) *CheckpointScheduler {
	if interval <= 0 {
		interval = DefaultCheckpointInterval
	}
	if logger == nil {
		logger = logging.Default
	}
	return &CheckpointScheduler{
		scheduler: s,
		repo:      repo,
		source:    source,
		table:     table,
		interval:  interval,
		logger:    logger,
	}
}

// Start registers the checkpoint task and starts the scheduler
func (c *CheckpointScheduler) Start(ctx context.Context) {
	c.scheduler.AddTask("value_checkpoint", c.interval, c.Checkpoint)
	c.scheduler.Start(ctx)
	c.logger.Info("Checkpointing table %s every %s", c.table, c.interval)
}

// Stop stops the scheduler and writes a final checkpoint
func (c *CheckpointScheduler) Stop(ctx context.Context) error {
	c.scheduler.Stop()
	return c.Checkpoint(ctx)
}

// Checkpoint saves the current table
func (c *CheckpointScheduler) Checkpoint(ctx context.Context) error {
	entries := c.source.Snapshot()
	if err := c.repo.SaveTable(ctx, c.table, entries); err != nil {
		return err
	}
	c.saves.Add(1)
	c.logger.Debug("Checkpointed table %s with %d entries", c.table, len(entries))
	return nil
}

// Saves returns how many checkpoints have been written
func (c *CheckpointScheduler) Saves() int64 {
	return c.saves.Load()
}
