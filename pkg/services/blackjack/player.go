package blackjack

import (
	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/strategy"
)

// Player owns one or more hands in a round. Hands, DoubledDown and States are
// index-aligned: entry i of each describes hand i. A nil state means it has not
// been refreshed since the hand changed.
type Player struct {
	Hands       []*Hand
	HandIndex   int
	DoubledDown []bool
	States      []*strategy.State
	Record      entities.Record
	Strategy    strategy.Strategy
}

// NewPlayer creates a player driven by s with a single empty hand
func NewPlayer(s strategy.Strategy) *Player {
	p := &Player{Strategy: s}
	p.ResetHands()
	return p
}

// ResetHands discards every hand and starts a fresh single hand holding cards
func (p *Player) ResetHands(cards ...*entities.Card) {
	p.Hands = []*Hand{NewHand(cards...)}
	p.HandIndex = 0
	p.DoubledDown = []bool{false}
	p.States = []*strategy.State{nil}
}

func (p *Player) checkAlignment() error {
	if len(p.DoubledDown) != len(p.Hands) || len(p.States) != len(p.Hands) {
		return types.Errorf(types.ErrStateMisaligned,
			"hands=%d doubled=%d states=%d", len(p.Hands), len(p.DoubledDown), len(p.States))
	}
	return nil
}

func (p *Player) checkIndex(i int) error {
	if err := p.checkAlignment(); err != nil {
		return err
	}
	if i < 0 || i >= len(p.Hands) {
		return types.Errorf(types.ErrHandIndexOutOfRange, "hand %d of %d", i, len(p.Hands))
	}
	return nil
}

// SetCurrentHand moves play to hand i
func (p *Player) SetCurrentHand(i int) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	p.HandIndex = i
	return nil
}

// CurrentHand returns the hand being played
func (p *Player) CurrentHand() (*Hand, error) {
	if err := p.checkIndex(p.HandIndex); err != nil {
		return nil, err
	}
	return p.Hands[p.HandIndex], nil
}

// IsDoubledDown reports whether hand i was doubled. Out of range indexes report false.
func (p *Player) IsDoubledDown(i int) bool {
	if i < 0 || i >= len(p.DoubledDown) {
		return false
	}
	return p.DoubledDown[i]
}

// DrawOne moves the top card of the deck into the current hand. The card is nil
// when the deck is empty, in which case nothing changes.
func (p *Player) DrawOne(deck *entities.Deck) (*entities.Card, error) {
	hand, err := p.CurrentHand()
	if err != nil {
		return nil, err
	}

	card := deck.Draw()
	if card == nil {
		return nil, nil
	}

	if err := hand.AddCard(card); err != nil {
		return nil, err
	}
	p.States[p.HandIndex] = nil
	return card, nil
}

// CanSplit reports whether the current hand is a pair of equal ranks
func (p *Player) CanSplit() bool {
	hand, err := p.CurrentHand()
	if err != nil {
		return false
	}
	return hand.IsPair()
}

// Split moves the second card of the current pair into a new hand appended at
// the end. The current hand stays selected and both states need a refresh.
func (p *Player) Split() (bool, error) {
	hand, err := p.CurrentHand()
	if err != nil {
		return false, err
	}
	if !hand.IsPair() {
		return false, nil
	}

	moved := hand.Cards[1]
	hand.Cards = hand.Cards[:1]

	p.Hands = append(p.Hands, NewHand(moved))
	p.DoubledDown = append(p.DoubledDown, false)
	p.States = append(p.States, nil)
	p.States[p.HandIndex] = nil

	return true, nil
}

// CanDoubleDown reports an untouched two card hand that has not been doubled
func (p *Player) CanDoubleDown() bool {
	hand, err := p.CurrentHand()
	if err != nil {
		return false
	}
	return hand.Len() == InitialHandSize && !p.DoubledDown[p.HandIndex]
}

// DoubleDown draws exactly one card into the current hand and marks it doubled.
// It reports false without changes when the hand is not eligible or the deck is empty.
func (p *Player) DoubleDown(deck *entities.Deck) (bool, error) {
	if _, err := p.CurrentHand(); err != nil {
		return false, err
	}
	if !p.CanDoubleDown() || deck.Remaining() == 0 {
		return false, nil
	}

	card, err := p.DrawOne(deck)
	if err != nil || card == nil {
		return false, err
	}
	p.DoubledDown[p.HandIndex] = true
	return true, nil
}

// RefreshState recomputes the strategy state of the current hand against upcard
func (p *Player) RefreshState(upcard strategy.Upcard) error {
	hand, err := p.CurrentHand()
	if err != nil {
		return err
	}

	total, usableAce := hand.Evaluate()
	p.States[p.HandIndex] = &strategy.State{
		Total:     total,
		Upcard:    upcard,
		UsableAce: usableAce,
	}
	return nil
}

// State returns the current hand's state. A stale entry is replaced with a
// fallback that has no upcard and no usable ace.
func (p *Player) State() (strategy.State, error) {
	hand, err := p.CurrentHand()
	if err != nil {
		return strategy.State{}, err
	}

	if state := p.States[p.HandIndex]; state != nil {
		return *state, nil
	}

	fallback := &strategy.State{Total: hand.Value()}
	p.States[p.HandIndex] = fallback
	return *fallback, nil
}

// DecideAction asks the strategy for the current hand. Pairs go to the pair
// rules first when the strategy has them.
func (p *Player) DecideAction() (strategy.Action, error) {
	hand, err := p.CurrentHand()
	if err != nil {
		return "", err
	}
	state, err := p.State()
	if err != nil {
		return "", err
	}

	if pairs, ok := p.Strategy.(strategy.PairStrategy); ok && hand.IsPair() {
		if action, ok := pairs.DecidePair(hand.Cards[0].Rank, state.Upcard); ok {
			return action, nil
		}
	}

	return p.Strategy.Decide(state), nil
}

// RecordResult adds a resolved hand to the cumulative record
func (p *Player) RecordResult(result entities.Result) {
	p.Record.Add(result)
}
