package strategy

import (
	"sort"
	"sync"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// Source is the random source used for exploration. *rand.Rand satisfies it.
type Source interface {
	Intner
	Float64() float64
}

// QLearningConfig holds the learning parameters
type QLearningConfig struct {
	LearningRate float64
	Discount     float64
	Exploration  float64
}

// DefaultQLearningConfig returns the default learning parameters
func DefaultQLearningConfig() QLearningConfig {
	return QLearningConfig{
		LearningRate: 0.1,
		Discount:     0.95,
		Exploration:  0.05,
	}
}

// QLearning is a tabular epsilon-greedy Q-learning strategy.
// Decide and RecordOutcome belong to the session goroutine; the read
// accessors may be called concurrently, e.g. by a checkpoint task.
type QLearning struct {
	mu     sync.RWMutex
	q      map[Key]map[Action]float64
	config QLearningConfig
	rng    Source
}

// NewQLearning creates a learning strategy with an empty value table
func NewQLearning(config QLearningConfig, rng Source) *QLearning {
	return &QLearning{
		q:      make(map[Key]map[Action]float64),
		config: config,
		rng:    rng,
	}
}

// Config returns the learning parameters
func (l *QLearning) Config() QLearningConfig {
	return l.config
}

// Decide explores with probability Exploration and otherwise takes the best known action
func (l *QLearning) Decide(state State) Action {
	if l.config.Exploration > 0 && l.rng.Float64() < l.config.Exploration {
		return Actions[l.rng.Intn(len(Actions))]
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	action, _ := l.best(state.Key())
	return action
}

// best returns the greedy action for key; ties go to the earlier action in Actions
func (l *QLearning) best(key Key) (Action, float64) {
	values := l.q[key]
	bestAction := Actions[0]
	bestValue := values[bestAction]
	for _, action := range Actions[1:] {
		if values[action] > bestValue {
			bestAction = action
			bestValue = values[action]
		}
	}
	return bestAction, bestValue
}

// RecordOutcome applies one Q-learning update
func (l *QLearning) RecordOutcome(state State, action Action, reward float64, next *State) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := state.Key()
	values, ok := l.q[key]
	if !ok {
		values = make(map[Action]float64, len(Actions))
		l.q[key] = values
	}

	future := 0.0
	if next != nil {
		_, future = l.best(next.Key())
	}

	current := values[action]
	values[action] = current + l.config.LearningRate*(reward+l.config.Discount*future-current)
}

// Value returns the learned value of taking action in state
func (l *QLearning) Value(state State, action Action) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.q[state.Key()][action]
}

// Table returns a copy of the value table
func (l *QLearning) Table() map[Key]map[Action]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	table := make(map[Key]map[Action]float64, len(l.q))
	for key, values := range l.q {
		row := make(map[Action]float64, len(values))
		for action, value := range values {
			row[action] = value
		}
		table[key] = row
	}
	return table
}

// Snapshot flattens the value table into storable entries in a stable order
func (l *QLearning) Snapshot() []*entities.ValueEntry {
	table := l.Table()

	entries := make([]*entities.ValueEntry, 0, len(table)*len(Actions))
	for key, values := range table {
		for action, value := range values {
			entries = append(entries, &entities.ValueEntry{
				Total:     key.Total,
				Dealer:    key.Dealer,
				UsableAce: key.UsableAce,
				Action:    string(action),
				Value:     value,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Total != b.Total {
			return a.Total < b.Total
		}
		if a.Dealer != b.Dealer {
			return a.Dealer < b.Dealer
		}
		if a.UsableAce != b.UsableAce {
			return !a.UsableAce
		}
		return a.Action < b.Action
	})

	return entries
}

// Load replaces the value table with stored entries. Entries naming an unknown action are skipped.
func (l *QLearning) Load(entries []*entities.ValueEntry) int {
	table := make(map[Key]map[Action]float64)
	loaded := 0
	for _, entry := range entries {
		action := Action(entry.Action)
		if !action.Valid() {
			continue
		}
		key := Key{Total: entry.Total, Dealer: entry.Dealer, UsableAce: entry.UsableAce}
		if table[key] == nil {
			table[key] = make(map[Action]float64, len(Actions))
		}
		table[key][action] = entry.Value
		loaded++
	}

	l.mu.Lock()
	l.q = table
	l.mu.Unlock()

	return loaded
}
