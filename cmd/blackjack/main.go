package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fadedpez/blackjacksim/internal/config"
	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/pkg/services/blackjack"
	"github.com/fadedpez/blackjacksim/pkg/strategy"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command. Set flags override the loaded configuration.
type Globals struct {
	Config      string `help:"HCL configuration file" type:"path"`
	LogLevel    string `help:"Log level: debug, info, warn or error"`
	Strategy    string `short:"s" help:"Strategy: basic, random or qlearning"`
	Rounds      int    `short:"n" help:"Maximum rounds per session"`
	Threshold   int    `help:"Reshuffle when fewer than this many cards remain"`
	NoReshuffle bool   `help:"End the session instead of reshuffling"`
	Seed        *int64 `help:"Seed for a reproducible run"`
	Store       string `help:"Value store: memory, sqlite or file"`
	DataDir     string `help:"Directory for persistent stores" type:"path"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play one session"`
	Batch   BatchCmd         `cmd:"" help:"Play isolated sessions in parallel"`
	Train   TrainCmd         `cmd:"" help:"Train the Q-learning strategy and checkpoint its table"`
	Migrate MigrateCmd       `cmd:"" help:"Apply database migrations to the sqlite value store"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack round engine and strategy simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the configuration and applies the flags on top
func (g *Globals) load() (*config.Config, *logging.Logger, error) {
	if g.Config != "" {
		if err := os.Setenv(config.ConfigFileEnv, g.Config); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	g.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogger(cfg.Level(), os.Stderr)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Debug("Using seed %d", cfg.Seed)
	}
	return cfg, logger, nil
}

func (g *Globals) apply(cfg *config.Config) {
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Strategy != "" {
		cfg.Strategy = g.Strategy
	}
	if g.Rounds != 0 {
		cfg.MaxRounds = g.Rounds
	}
	if g.Threshold != 0 {
		cfg.ReshuffleThreshold = g.Threshold
	}
	if g.NoReshuffle {
		cfg.Reshuffle = false
	}
	if g.Seed != nil {
		cfg.Seed = *g.Seed
	}
	if g.Store != "" {
		cfg.StoreType = g.Store
	}
	if g.DataDir != "" {
		cfg.DataDir = g.DataDir
	}
}

// sessionConfig converts the loaded configuration for the round engine
func sessionConfig(cfg *config.Config) blackjack.Config {
	return blackjack.Config{
		MaxRounds:          cfg.MaxRounds,
		ReshuffleThreshold: cfg.ReshuffleThreshold,
		Reshuffle:          cfg.Reshuffle,
	}
}

// newStrategy builds the configured strategy with its own random source
func newStrategy(cfg *config.Config, name string, seed int64) (strategy.Strategy, error) {
	return strategy.New(name, strategy.Options{
		Rand:      rand.New(rand.NewSource(seed)),
		QLearning: cfg.QLearning(),
	})
}

// sessionSeeds derives the deck and strategy seeds of the i-th session from the
// run seed. Deck seeds are even and strategy seeds odd, so no two random streams
// of a run share a seed.
func sessionSeeds(seed int64, i int) (deckSeed, strategySeed int64) {
	base := seed + int64(i)
	return base * 2, base*2 + 1
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
