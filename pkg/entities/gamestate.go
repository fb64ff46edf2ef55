package entities

// Result is the outcome of a single hand from the player's side
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLoss Result = "LOSS"
	ResultDraw Result = "DRAW"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin
}

// Reward maps the result onto the +1/-1/0 signal handed to learning strategies
func (r Result) Reward() float64 {
	switch r {
	case ResultWin:
		return 1
	case ResultLoss:
		return -1
	default:
		return 0
	}
}

// Game state types
type GameState string

const (
	StateWaiting    GameState = "WAITING"
	StateDealing    GameState = "DEALING"
	StatePlayerTurn GameState = "PLAYER_TURN"
	StateDealerTurn GameState = "DEALER_TURN"
	StateResolution GameState = "RESOLUTION"
	StateComplete   GameState = "COMPLETE"
)

// Record is the cumulative win/loss/draw tally of a player
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Add increments the counter matching the result
func (r *Record) Add(result Result) {
	switch result {
	case ResultWin:
		r.Wins++
	case ResultLoss:
		r.Losses++
	case ResultDraw:
		r.Draws++
	}
}

// Total returns the number of results recorded
func (r Record) Total() int {
	return r.Wins + r.Losses + r.Draws
}

// Merge returns the sum of two records
func (r Record) Merge(other Record) Record {
	return Record{
		Wins:   r.Wins + other.Wins,
		Losses: r.Losses + other.Losses,
		Draws:  r.Draws + other.Draws,
	}
}
