package main

import (
	"os"
	"runtime"

	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
	"github.com/fadedpez/blackjacksim/pkg/services/statistics"
)

// BatchCmd plays isolated sessions concurrently. Each session owns its deck,
// player, strategy instance and seed.
type BatchCmd struct {
	Sessions   int      `default:"8" help:"Number of sessions"`
	Workers    int      `help:"Sessions running at once (defaults to the number of CPUs)"`
	Strategies []string `help:"Strategies to compare, assigned round robin (defaults to --strategy)"`
}

func (c *BatchCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	names := c.Strategies
	if len(names) == 0 {
		names = []string{cfg.Strategy}
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	session := sessionConfig(cfg)

	logger.Info("Running %d sessions of %d rounds on %d workers (seed %d)", c.Sessions, cfg.MaxRounds, workers, cfg.Seed)
	results, err := blackjack.RunBatch(ctx, c.Sessions, workers, func(i int) (*blackjack.Game, error) {
		deckSeed, strategySeed := sessionSeeds(cfg.Seed, i)
		s, err := newStrategy(cfg, names[i%len(names)], strategySeed)
		if err != nil {
			return nil, err
		}
		return blackjack.NewGame(blackjack.NewPlayer(s), session,
			blackjack.WithShuffler(entities.NewShuffler(deckSeed)),
			blackjack.WithLogger(logger.With("worker_session", i)),
		)
	})
	if err != nil {
		return err
	}

	summaries := make([]*statistics.Summary, len(results))
	for i, stats := range results {
		summaries[i] = statistics.Summarize(stats)
	}

	printSummary(os.Stdout, statistics.Aggregate(summaries...))
	if len(names) > 1 {
		printRanking(os.Stdout, statistics.RankStrategies(summaries))
	}
	return nil
}
