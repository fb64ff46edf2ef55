// Package strategy turns an abstracted blackjack state into a player action.
package strategy

import (
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/strategy.go -package=mock_strategy

// Action is a player decision
type Action string

const (
	Hit        Action = "hit"
	Stand      Action = "stand"
	DoubleDown Action = "double down"
	Split      Action = "split"
)

// Actions is the full action set in a fixed order
var Actions = []Action{Hit, Stand, DoubleDown, Split}

// String returns the string representation of the action
func (a Action) String() string {
	return string(a)
}

// Valid reports whether a is a member of the action set
func (a Action) Valid() bool {
	switch a {
	case Hit, Stand, DoubleDown, Split:
		return true
	}
	return false
}

// Upcard is the dealer card visible to the player. Card is nil when only a raw
// value is known, and both are empty when the upcard is unknown.
type Upcard struct {
	Card  *entities.Card
	Value int
}

// CardUpcard wraps a dealt card
func CardUpcard(card *entities.Card) Upcard {
	return Upcard{Card: card}
}

// ValueUpcard wraps a raw dealer value
func ValueUpcard(value int) Upcard {
	return Upcard{Value: value}
}

// Normalize returns the dealer value in the 2-11 range: face cards count 10,
// an Ace 11 and numerals their own value. A raw value passes through unchanged.
func (u Upcard) Normalize() int {
	if u.Card == nil {
		return u.Value
	}
	return u.Card.PointValue()
}

// Known reports whether any dealer information is present
func (u Upcard) Known() bool {
	return u.Card != nil || u.Value != 0
}

// State is the abstracted view of one player hand
type State struct {
	Total     int
	Upcard    Upcard
	UsableAce bool
}

// Key is the comparable form of a State used by lookup tables
type Key struct {
	Total     int
	Dealer    int
	UsableAce bool
}

// Key returns the table key for the state
func (s State) Key() Key {
	return Key{
		Total:     s.Total,
		Dealer:    s.Upcard.Normalize(),
		UsableAce: s.UsableAce,
	}
}

// Strategy decides an action for a state. Decide must be total: it always
// returns a member of Actions.
type Strategy interface {
	Decide(state State) Action
}

// PairStrategy is implemented by strategies with dedicated rules for pairs.
// ok is false when the rank has no pair rule and Decide should be used.
type PairStrategy interface {
	DecidePair(rank entities.Rank, upcard Upcard) (action Action, ok bool)
}

// Learner is a strategy that adapts from feedback. next is nil for a terminal transition.
type Learner interface {
	Strategy
	RecordOutcome(state State, action Action, reward float64, next *State)
	Value(state State, action Action) float64
	Table() map[Key]map[Action]float64
}
