package main

import (
	"context"
	"os"

	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/repositories/values"
	"github.com/fadedpez/blackjacksim/pkg/scheduler"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
	"github.com/fadedpez/blackjacksim/pkg/services/statistics"
	"github.com/fadedpez/blackjacksim/pkg/strategy"
)

// TrainCmd runs sessions with one shared Q-learning strategy, resuming from and
// checkpointing to the configured store
type TrainCmd struct {
	Sessions int    `default:"100" help:"Number of sessions to train for"`
	Table    string `default:"qlearning" help:"Name of the stored value table"`
}

func (c *TrainCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	repo, err := values.New(ctx, cfg.StoreType, cfg.DataDir, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	shuffler := entities.NewShuffler(cfg.Seed)
	learner := strategy.NewQLearning(cfg.QLearning(), shuffler)

	entries, err := repo.GetTable(ctx, c.Table)
	if err != nil {
		return err
	}
	if entries != nil {
		loaded := learner.Load(entries)
		logger.Info("Resumed table %s with %d entries", c.Table, loaded)
	}

	checkpoints := scheduler.NewCheckpointScheduler(
		scheduler.NewScheduler(nil, logger),
		repo, learner, c.Table, cfg.CheckpointInterval, logger,
	)
	checkpoints.Start(ctx)

	summaries := make([]*statistics.Summary, 0, c.Sessions)
	var runErr error
	for i := 0; i < c.Sessions; i++ {
		game, err := blackjack.NewGame(blackjack.NewPlayer(learner), sessionConfig(cfg),
			blackjack.WithShuffler(shuffler),
			blackjack.WithLogger(logger),
		)
		if err != nil {
			runErr = err
			break
		}

		stats, err := game.Run(ctx)
		summaries = append(summaries, statistics.Summarize(stats))
		if err != nil {
			runErr = err
			break
		}
	}

	// The final checkpoint is written even when training was interrupted
	if err := checkpoints.Stop(context.Background()); err != nil {
		return err
	}
	logger.Info("Saved table %s after %d checkpoints", c.Table, checkpoints.Saves())

	printSummary(os.Stdout, statistics.Aggregate(summaries...))
	return runErr
}
