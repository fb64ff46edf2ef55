package blackjack

import (
	"errors"
	"strings"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

var (
	ErrInvalidCard = errors.New("invalid card")
)

// Hand represents one party's cards in a round of blackjack.
// Totals are always derived from the cards, never stored.
type Hand struct {
	Cards []*entities.Card
}

// NewHand creates a new blackjack hand
func NewHand(cards ...*entities.Card) *Hand {
	hand := &Hand{
		Cards: make([]*entities.Card, 0, len(cards)+1),
	}
	hand.Cards = append(hand.Cards, cards...)
	return hand
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *entities.Card) error {
	if card == nil {
		return ErrInvalidCard
	}

	h.Cards = append(h.Cards, card)
	return nil
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Evaluate returns the best total and whether an Ace still counts 11
func (h *Hand) Evaluate() (int, bool) {
	return Evaluate(h.Cards)
}

// Value returns the best possible score for the hand
func (h *Hand) Value() int {
	return GetBestScore(h.Cards)
}

func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.Cards)
}

// IsPair reports exactly two cards of the same rank. Ranks are compared, not
// point values, so a King and a Queen are not a pair.
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, card := range h.Cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}
