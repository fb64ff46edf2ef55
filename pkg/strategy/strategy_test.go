package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

func TestActionValid(t *testing.T) {
	for _, action := range Actions {
		assert.True(t, action.Valid(), action)
	}
	assert.False(t, Action("surrender").Valid())
}

func TestRandomCoversActionSet(t *testing.T) {
	random := NewRandom(rand.New(rand.NewSource(7)))
	seen := make(map[Action]int)

	for i := 0; i < 400; i++ {
		action := random.Decide(State{Total: 12})
		require.True(t, action.Valid())
		seen[action]++
	}

	assert.Len(t, seen, len(Actions), "every action should be sampled")
}

func TestQLearningUpdatesValues(t *testing.T) {
	learner := NewQLearning(DefaultQLearningConfig(), rand.New(rand.NewSource(1)))

	s := State{Total: 14, Upcard: CardUpcard(entities.NewCard(entities.Spades, entities.Six))}
	next := State{Total: 19, Upcard: s.Upcard}

	before := learner.Value(s, Hit)
	learner.RecordOutcome(s, Hit, 1, &next)

	assert.NotEqual(t, before, learner.Value(s, Hit))
	assert.InDelta(t, 0.1, learner.Value(s, Hit), 1e-9)
}

func TestQLearningBootstrapsFromNextState(t *testing.T) {
	learner := NewQLearning(QLearningConfig{LearningRate: 0.5, Discount: 0.9}, rand.New(rand.NewSource(1)))

	next := State{Total: 20, Upcard: ValueUpcard(10)}
	learner.RecordOutcome(next, Stand, 1, nil)
	require.InDelta(t, 0.5, learner.Value(next, Stand), 1e-9)

	s := State{Total: 13, Upcard: ValueUpcard(10)}
	learner.RecordOutcome(s, Hit, 0, &next)

	// 0 + 0.5 * (0 + 0.9*0.5 - 0)
	assert.InDelta(t, 0.225, learner.Value(s, Hit), 1e-9)
}

func TestQLearningGreedyDecision(t *testing.T) {
	learner := NewQLearning(QLearningConfig{LearningRate: 1, Discount: 0.95}, rand.New(rand.NewSource(1)))
	s := State{Total: 12, Upcard: ValueUpcard(4)}

	assert.Equal(t, Hit, learner.Decide(s), "ties go to the first action")

	learner.RecordOutcome(s, Stand, 1, nil)
	assert.Equal(t, Stand, learner.Decide(s))
}

func TestQLearningExplorationStaysInActionSet(t *testing.T) {
	learner := NewQLearning(QLearningConfig{Exploration: 1}, rand.New(rand.NewSource(3)))

	for i := 0; i < 50; i++ {
		assert.True(t, learner.Decide(State{Total: 15}).Valid())
	}
}

func TestQLearningTableIsACopy(t *testing.T) {
	learner := NewQLearning(DefaultQLearningConfig(), rand.New(rand.NewSource(1)))
	s := State{Total: 16, Upcard: ValueUpcard(10)}
	learner.RecordOutcome(s, Stand, -1, nil)

	table := learner.Table()
	require.Contains(t, table, s.Key())
	table[s.Key()][Stand] = 42

	assert.InDelta(t, -0.1, learner.Value(s, Stand), 1e-9)
}

func TestQLearningSnapshotRoundTrip(t *testing.T) {
	learner := NewQLearning(DefaultQLearningConfig(), rand.New(rand.NewSource(1)))
	learner.RecordOutcome(State{Total: 16, Upcard: ValueUpcard(10)}, Stand, -1, nil)
	learner.RecordOutcome(State{Total: 18, Upcard: ValueUpcard(6), UsableAce: true}, Hit, 1, nil)

	entries := learner.Snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, 16, entries[0].Total)

	restored := NewQLearning(DefaultQLearningConfig(), rand.New(rand.NewSource(2)))
	loaded := restored.Load(append(entries, &entities.ValueEntry{Total: 5, Action: "surrender"}))

	assert.Equal(t, 2, loaded)
	assert.Equal(t, learner.Table(), restored.Table())
}

func TestNew(t *testing.T) {
	opts := Options{Rand: rand.New(rand.NewSource(1)), QLearning: DefaultQLearningConfig()}

	for _, name := range Names {
		s, err := New(name, opts)
		require.NoError(t, err, name)
		assert.Equal(t, name, NameOf(s))
	}

	_, err := New("martingale", opts)
	assert.True(t, types.IsGameError(err, types.ErrUnknownStrategy))

	_, err = New(NameRandom, Options{})
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))

	basic, err := New(NameBasic, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Basic{}, basic)
}
