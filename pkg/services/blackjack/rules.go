package blackjack

import (
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

const (
	BlackjackTotal            = 21
	DealerStandTotal          = 17
	InitialHandSize           = 2
	DefaultReshuffleThreshold = 13 // Reshuffle when fewer than 13 cards remain (25% of one deck)
	DefaultMaxRounds          = 50
	minDealSize               = 2 * InitialHandSize
)

// Winner is the side that takes a hand
type Winner string

const (
	WinnerPlayer Winner = "player"
	WinnerDealer Winner = "dealer"
	WinnerDraw   Winner = "draw"
)

// Result converts the winner into the player's result
func (w Winner) Result() entities.Result {
	switch w {
	case WinnerPlayer:
		return entities.ResultWin
	case WinnerDealer:
		return entities.ResultLoss
	default:
		return entities.ResultDraw
	}
}

func GetCardValue(card *entities.Card) int {
	return card.PointValue()
}

func IsAce(card *entities.Card) bool {
	return card.IsAce()
}

// Evaluate returns the best total of the cards and whether an Ace is still counted as 11.
// Aces start at 11 and are demoted to 1, one at a time, while the total exceeds 21.
func Evaluate(cards []*entities.Card) (total int, usableAce bool) {
	aces := 0
	for _, card := range cards {
		total += GetCardValue(card)
		if IsAce(card) {
			aces++
		}
	}

	demoted := 0
	for total > BlackjackTotal && demoted < aces {
		total -= 10
		demoted++
	}

	return total, aces-demoted > 0
}

func GetBestScore(cards []*entities.Card) int {
	total, _ := Evaluate(cards)
	return total
}

func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == InitialHandSize && GetBestScore(cards) == BlackjackTotal
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return GetBestScore(cards) > BlackjackTotal
}

// IsSoft17 reports a 17 that still counts an Ace as 11
func IsSoft17(cards []*entities.Card) bool {
	total, usableAce := Evaluate(cards)
	return total == DealerStandTotal && usableAce
}

// DealerShouldHit is the fixed dealer policy: draw below 17 and on soft 17
func DealerShouldHit(cards []*entities.Card) bool {
	total := GetBestScore(cards)
	return total < DealerStandTotal || IsSoft17(cards)
}

// DetermineWinner settles one player hand against the dealer. Precedence:
// player bust, dealer bust, player natural (a draw against a dealer natural), higher total.
func DetermineWinner(player, dealer []*entities.Card) Winner {
	playerTotal := GetBestScore(player)
	dealerTotal := GetBestScore(dealer)

	switch {
	case playerTotal > BlackjackTotal:
		return WinnerDealer
	case dealerTotal > BlackjackTotal:
		return WinnerPlayer
	case IsBlackjack(player):
		if IsBlackjack(dealer) {
			return WinnerDraw
		}
		return WinnerPlayer
	case playerTotal > dealerTotal:
		return WinnerPlayer
	case playerTotal < dealerTotal:
		return WinnerDealer
	default:
		return WinnerDraw
	}
}

// NewShuffledDeck creates a full deck permuted by s
func NewShuffledDeck(s entities.Shuffler) *entities.Deck {
	deck := entities.NewDeck()
	deck.Shuffle(s)
	return deck
}

// ShouldReshuffle checks if the deck should be reshuffled based on the remaining cards
func ShouldReshuffle(deck *entities.Deck, threshold int) bool {
	return deck.Remaining() < threshold
}
