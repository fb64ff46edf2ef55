package strategy

// Intner is the random source used by the random strategy. *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Random picks uniformly from the action set regardless of the state
type Random struct {
	rng Intner
}

// NewRandom creates a random strategy drawing from rng
func NewRandom(rng Intner) *Random {
	return &Random{rng: rng}
}

// Decide returns a uniformly sampled action
func (r *Random) Decide(State) Action {
	return Actions[r.rng.Intn(len(Actions))]
}
