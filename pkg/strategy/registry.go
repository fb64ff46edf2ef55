package strategy

import (
	"math/rand"

	"github.com/fadedpez/blackjacksim/internal/types"
)

// Registered strategy names
const (
	NameBasic     = "basic"
	NameRandom    = "random"
	NameQLearning = "qlearning"
)

// Names lists the strategies New can build
var Names = []string{NameBasic, NameRandom, NameQLearning}

// Options configures strategy construction
type Options struct {
	Rand      *rand.Rand
	QLearning QLearningConfig
}

// New builds the named strategy
func New(name string, opts Options) (Strategy, error) {
	switch name {
	case NameBasic:
		return NewBasic(), nil
	case NameRandom, NameQLearning:
	default:
		return nil, types.Errorf(types.ErrUnknownStrategy, "unknown strategy %q", name)
	}

	if opts.Rand == nil {
		return nil, types.Errorf(types.ErrInvalidArgument, "strategy %q needs a random source", name)
	}
	if name == NameRandom {
		return NewRandom(opts.Rand), nil
	}
	return NewQLearning(opts.QLearning, opts.Rand), nil
}

// NameOf returns the registered name of s, or "custom"
func NameOf(s Strategy) string {
	switch s.(type) {
	case *Basic:
		return NameBasic
	case *Random:
		return NameRandom
	case *QLearning:
		return NameQLearning
	default:
		return "custom"
	}
}
