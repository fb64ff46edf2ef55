package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

func card(rank entities.Rank) *entities.Card {
	return entities.NewCard(entities.Hearts, rank)
}

func TestUpcardNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		upcard   Upcard
		expected int
	}{
		{name: "king", upcard: CardUpcard(card(entities.King)), expected: 10},
		{name: "jack", upcard: CardUpcard(card(entities.Jack)), expected: 10},
		{name: "ace", upcard: CardUpcard(card(entities.Ace)), expected: 11},
		{name: "seven", upcard: CardUpcard(card(entities.Seven)), expected: 7},
		{name: "raw value passes through", upcard: ValueUpcard(6), expected: 6},
		{name: "unknown", upcard: Upcard{}, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.upcard.Normalize())
		})
	}
}

func TestBasicHardTable(t *testing.T) {
	basic := NewBasic()

	testCases := []struct {
		name     string
		total    int
		dealer   int
		expected Action
	}{
		{name: "hard 17 stands", total: 17, dealer: 10, expected: Stand},
		{name: "hard 20 stands vs ace", total: 20, dealer: 11, expected: Stand},
		{name: "hard 16 vs 7 hits", total: 16, dealer: 7, expected: Hit},
		{name: "hard 16 vs 5 stands", total: 16, dealer: 5, expected: Stand},
		{name: "hard 13 vs 2 stands", total: 13, dealer: 2, expected: Stand},
		{name: "hard 12 vs 3 hits", total: 12, dealer: 3, expected: Hit},
		{name: "hard 12 vs 4 stands", total: 12, dealer: 4, expected: Stand},
		{name: "hard 11 vs ace doubles", total: 11, dealer: 11, expected: DoubleDown},
		{name: "hard 10 vs 9 doubles", total: 10, dealer: 9, expected: DoubleDown},
		{name: "hard 10 vs 10 hits", total: 10, dealer: 10, expected: Hit},
		{name: "hard 9 vs 3 doubles", total: 9, dealer: 3, expected: DoubleDown},
		{name: "hard 9 vs 2 hits", total: 9, dealer: 2, expected: Hit},
		{name: "hard 8 hits", total: 8, dealer: 6, expected: Hit},
		{name: "bust total stands", total: 24, dealer: 6, expected: Stand},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := State{Total: tc.total, Upcard: ValueUpcard(tc.dealer)}
			assert.Equal(t, tc.expected, basic.Decide(state))
		})
	}
}

func TestBasicHardSpotChecksForEveryUpcard(t *testing.T) {
	basic := NewBasic()

	for _, rank := range entities.Ranks {
		upcard := CardUpcard(card(rank))
		assert.Equal(t, Stand, basic.Decide(State{Total: 17, Upcard: upcard}), "17 vs %s", rank)
		assert.Equal(t, DoubleDown, basic.Decide(State{Total: 11, Upcard: upcard}), "11 vs %s", rank)
	}
}

func TestBasicSoftTable(t *testing.T) {
	basic := NewBasic()

	testCases := []struct {
		name     string
		total    int
		dealer   int
		expected Action
	}{
		{name: "soft 19 stands", total: 19, dealer: 6, expected: Stand},
		{name: "soft 18 vs 2 stands", total: 18, dealer: 2, expected: Stand},
		{name: "soft 18 vs 7 stands", total: 18, dealer: 7, expected: Stand},
		{name: "soft 18 vs 3 hits", total: 18, dealer: 3, expected: Hit},
		{name: "soft 18 vs 9 hits", total: 18, dealer: 9, expected: Hit},
		{name: "soft 17 vs 3 doubles", total: 17, dealer: 3, expected: DoubleDown},
		{name: "soft 17 vs 2 hits", total: 17, dealer: 2, expected: Hit},
		{name: "soft 15 vs 4 doubles", total: 15, dealer: 4, expected: DoubleDown},
		{name: "soft 16 vs 6 doubles", total: 16, dealer: 6, expected: DoubleDown},
		{name: "soft 13 vs 3 hits", total: 13, dealer: 3, expected: Hit},
		{name: "soft 12 hits", total: 12, dealer: 5, expected: Hit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := State{Total: tc.total, Upcard: ValueUpcard(tc.dealer), UsableAce: true}
			assert.Equal(t, tc.expected, basic.Decide(state))
		})
	}
}

func TestBasicPairTable(t *testing.T) {
	basic := NewBasic()

	for _, rank := range entities.Ranks {
		upcard := CardUpcard(card(rank))

		action, ok := basic.DecidePair(entities.Ace, upcard)
		assert.True(t, ok)
		assert.Equal(t, Split, action, "aces vs %s", rank)

		action, ok = basic.DecidePair(entities.Eight, upcard)
		assert.True(t, ok)
		assert.Equal(t, Split, action, "eights vs %s", rank)

		action, ok = basic.DecidePair(entities.Ten, upcard)
		assert.True(t, ok)
		assert.Equal(t, Stand, action, "tens vs %s", rank)

		action, ok = basic.DecidePair(entities.King, upcard)
		assert.True(t, ok)
		assert.Equal(t, Stand, action, "kings vs %s", rank)
	}

	testCases := []struct {
		name     string
		rank     entities.Rank
		dealer   int
		expected Action
	}{
		{name: "nines vs 6 split", rank: entities.Nine, dealer: 6, expected: Split},
		{name: "nines vs 7 stand", rank: entities.Nine, dealer: 7, expected: Stand},
		{name: "nines vs 9 split", rank: entities.Nine, dealer: 9, expected: Split},
		{name: "nines vs 10 stand", rank: entities.Nine, dealer: 10, expected: Stand},
		{name: "fives vs 9 double", rank: entities.Five, dealer: 9, expected: DoubleDown},
		{name: "fives vs 10 hit", rank: entities.Five, dealer: 10, expected: Hit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, ok := basic.DecidePair(tc.rank, ValueUpcard(tc.dealer))
			assert.True(t, ok)
			assert.Equal(t, tc.expected, action)
		})
	}

	_, ok := basic.DecidePair(entities.Seven, ValueUpcard(7))
	assert.False(t, ok, "sevens have no pair rule")
}
