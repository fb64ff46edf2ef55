package main

import (
	"os"

	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
	"github.com/fadedpez/blackjacksim/pkg/services/statistics"
)

// PlayCmd plays a single session and prints its summary
type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	deckSeed, strategySeed := sessionSeeds(cfg.Seed, 0)
	s, err := newStrategy(cfg, cfg.Strategy, strategySeed)
	if err != nil {
		return err
	}

	game, err := blackjack.NewGame(blackjack.NewPlayer(s), sessionConfig(cfg),
		blackjack.WithShuffler(entities.NewShuffler(deckSeed)),
		blackjack.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("Playing %d rounds with %s (seed %d)", cfg.MaxRounds, cfg.Strategy, cfg.Seed)
	stats, err := game.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, statistics.Summarize(stats))
	return nil
}
