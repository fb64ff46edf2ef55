package blackjack

import "github.com/fadedpez/blackjacksim/pkg/entities"

// Dealer holds the house hand
type Dealer struct {
	Hand *Hand
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{Hand: NewHand()}
}

// Reset replaces the dealer's hand for a new round
func (d *Dealer) Reset(cards ...*entities.Card) {
	d.Hand = NewHand(cards...)
}

// Upcard returns the dealer's visible first card, or nil before the deal
func (d *Dealer) Upcard() *entities.Card {
	if d.Hand.Len() == 0 {
		return nil
	}
	return d.Hand.Cards[0]
}

func (d *Dealer) Total() int {
	return d.Hand.Value()
}

func (d *Dealer) HasSoft17() bool {
	return IsSoft17(d.Hand.Cards)
}

// ShouldHit applies the house rule: hit below 17 and on soft 17
func (d *Dealer) ShouldHit() bool {
	return DealerShouldHit(d.Hand.Cards)
}

// Play draws until the house rule says stand or the deck runs out. It returns the cards drawn.
func (d *Dealer) Play(deck *entities.Deck) int {
	drawn := 0
	for d.ShouldHit() {
		card := deck.Draw()
		if card == nil {
			break
		}
		d.Hand.Cards = append(d.Hand.Cards, card)
		drawn++
	}
	return drawn
}
