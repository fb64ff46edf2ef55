package entities

// ValueEntry is one cell of a learning strategy's value table, flattened for storage
type ValueEntry struct {
	Total     int     `json:"total"`
	Dealer    int     `json:"dealer"`
	UsableAce bool    `json:"usable_ace"`
	Action    string  `json:"action"`
	Value     float64 `json:"value"`
}
