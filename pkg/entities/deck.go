package entities

import (
	"math/rand"
	"time"
)

// FullDeckSize is the number of cards in a freshly built deck
const FullDeckSize = 52

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a seeded random source. A zero seed uses the current time.
func NewShuffler(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type Deck struct {
	Cards []*Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, FullDeckSize)

	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// NewStackedDeck creates a deck that deals the given cards in order
func NewStackedDeck(cards ...*Card) *Deck {
	stacked := make([]*Card, len(cards))
	copy(stacked, cards)
	return &Deck{Cards: stacked}
}

// Shuffle applies a random permutation drawn from s
func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the top card from the deck, or nil when the deck is empty
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
