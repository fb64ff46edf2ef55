package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/repositories/values"
	"github.com/fadedpez/blackjacksim/pkg/strategy"
)

// ConfigFileEnv names the environment variable pointing at an optional HCL file
const ConfigFileEnv = "BLACKJACK_CONFIG"

// Config holds all configuration for the application
type Config struct {
	// Session
	Strategy           string
	MaxRounds          int
	ReshuffleThreshold int
	Reshuffle          bool
	Seed               int64 // 0 seeds from the clock

	// Learning
	LearningRate       float64
	Discount           float64
	Exploration        float64
	CheckpointInterval time.Duration

	// Storage
	DataDir   string
	StoreType string

	LogLevel    string
	Environment string // "development" or "production"
}

// Default returns the built-in configuration
func Default() *Config {
	q := strategy.DefaultQLearningConfig()
	return &Config{
		Strategy:           strategy.NameBasic,
		MaxRounds:          50,
		ReshuffleThreshold: 13,
		Reshuffle:          true,
		LearningRate:       q.LearningRate,
		Discount:           q.Discount,
		Exploration:        q.Exploration,
		CheckpointInterval: 30 * time.Second,
		DataDir:            "data",
		StoreType:          values.StoreMemory,
		LogLevel:           "info",
		Environment:        "development",
	}
}

// Load reads the configuration. Later sources win: built-in defaults, the HCL
// file named by BLACKJACK_CONFIG, then environment variables (including .env).
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := Default()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.StoreType != values.StoreMemory {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Strategy = getEnvWithDefault("BLACKJACK_STRATEGY", c.Strategy)
	c.StoreType = getEnvWithDefault("BLACKJACK_STORE", c.StoreType)
	c.DataDir = getEnvWithDefault("DATA_DIR", c.DataDir)
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", c.LogLevel)
	c.Environment = getEnvWithDefault("ENVIRONMENT", c.Environment)

	var err error
	if c.MaxRounds, err = getEnvInt("BLACKJACK_MAX_ROUNDS", c.MaxRounds); err != nil {
		return err
	}
	if c.ReshuffleThreshold, err = getEnvInt("BLACKJACK_RESHUFFLE_THRESHOLD", c.ReshuffleThreshold); err != nil {
		return err
	}
	if c.Reshuffle, err = getEnvBool("BLACKJACK_RESHUFFLE", c.Reshuffle); err != nil {
		return err
	}
	if c.Seed, err = getEnvInt64("BLACKJACK_SEED", c.Seed); err != nil {
		return err
	}
	if c.LearningRate, err = getEnvFloat("BLACKJACK_LEARNING_RATE", c.LearningRate); err != nil {
		return err
	}
	if c.Discount, err = getEnvFloat("BLACKJACK_DISCOUNT", c.Discount); err != nil {
		return err
	}
	if c.Exploration, err = getEnvFloat("BLACKJACK_EXPLORATION", c.Exploration); err != nil {
		return err
	}
	if c.CheckpointInterval, err = getEnvDuration("BLACKJACK_CHECKPOINT_INTERVAL", c.CheckpointInterval); err != nil {
		return err
	}
	return nil
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	if c.MaxRounds < 1 {
		return types.Errorf(types.ErrInvalidArgument, "max rounds must be positive, got %d", c.MaxRounds)
	}
	if c.ReshuffleThreshold < 4 || c.ReshuffleThreshold > 52 {
		return types.Errorf(types.ErrInvalidArgument, "reshuffle threshold must be between 4 and 52, got %d", c.ReshuffleThreshold)
	}
	if !validStrategy(c.Strategy) {
		return types.Errorf(types.ErrInvalidArgument, "unknown strategy %q", c.Strategy)
	}
	switch c.StoreType {
	case values.StoreMemory, values.StoreSQLite, values.StoreFile:
	default:
		return types.Errorf(types.ErrInvalidArgument, "unknown store type %q", c.StoreType)
	}
	for name, rate := range map[string]float64{
		"learning rate": c.LearningRate,
		"discount":      c.Discount,
		"exploration":   c.Exploration,
	} {
		if rate < 0 || rate > 1 {
			return types.Errorf(types.ErrInvalidArgument, "%s must be between 0 and 1, got %v", name, rate)
		}
	}
	if c.CheckpointInterval <= 0 {
		return types.Errorf(types.ErrInvalidArgument, "checkpoint interval must be positive, got %s", c.CheckpointInterval)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return types.WrapError(types.ErrInvalidArgument, "invalid log level", err)
	}
	return nil
}

func validStrategy(name string) bool {
	for _, known := range strategy.Names {
		if name == known {
			return true
		}
	}
	return false
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// QLearning returns the learning parameters
func (c *Config) QLearning() strategy.QLearningConfig {
	return strategy.QLearningConfig{
		LearningRate: c.LearningRate,
		Discount:     c.Discount,
		Exploration:  c.Exploration,
	}
}

// Level returns the parsed log level, defaulting to INFO
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument, key+" must be an integer", err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument, key+" must be an integer", err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, types.WrapError(types.ErrInvalidArgument, key+" must be a boolean", err)
	}
	return b, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument, key+" must be a number", err)
	}
	return f, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument, key+" must be a duration", err)
	}
	return d, nil
}
