package strategy

import "github.com/fadedpez/blackjacksim/pkg/entities"

// Basic implements the classical basic-strategy lookup table
type Basic struct{}

// NewBasic creates a basic strategy
func NewBasic() *Basic {
	return &Basic{}
}

// Decide looks the state up in the hard or soft table
func (b *Basic) Decide(state State) Action {
	dealer := state.Upcard.Normalize()
	if state.UsableAce {
		return softAction(state.Total, dealer)
	}
	return hardAction(state.Total, dealer)
}

func hardAction(total, dealer int) Action {
	switch {
	case total >= 17:
		return Stand
	case total >= 13:
		if between(dealer, 2, 6) {
			return Stand
		}
		return Hit
	case total == 12:
		if between(dealer, 4, 6) {
			return Stand
		}
		return Hit
	case total == 11:
		return DoubleDown
	case total == 10:
		if between(dealer, 2, 9) {
			return DoubleDown
		}
		return Hit
	case total == 9:
		if between(dealer, 3, 6) {
			return DoubleDown
		}
		return Hit
	default:
		return Hit
	}
}

func softAction(total, dealer int) Action {
	switch {
	case total >= 19:
		return Stand
	case total == 18:
		if dealer == 2 || dealer == 7 || dealer == 8 {
			return Stand
		}
		return Hit
	case total == 17:
		if between(dealer, 3, 6) {
			return DoubleDown
		}
		return Hit
	case total >= 13:
		if between(dealer, 4, 6) {
			return DoubleDown
		}
		return Hit
	default:
		// soft 12 is only reachable with two aces
		return Hit
	}
}

// DecidePair covers the pairs with a dedicated rule
func (b *Basic) DecidePair(rank entities.Rank, upcard Upcard) (Action, bool) {
	dealer := upcard.Normalize()

	switch {
	case rank == entities.Ace, rank == entities.Eight:
		return Split, true
	case rank == entities.Ten, rank.IsFace():
		return Stand, true
	case rank == entities.Nine:
		if between(dealer, 2, 6) || dealer == 8 || dealer == 9 {
			return Split, true
		}
		return Stand, true
	case rank == entities.Five:
		if between(dealer, 2, 9) {
			return DoubleDown, true
		}
		return Hit, true
	}
	return "", false
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
