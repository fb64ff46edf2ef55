package entities

import "time"

// SessionStatistics represents aggregated statistics for one simulated session
type SessionStatistics struct {
	SessionID   string
	Strategy    string
	Record      Record
	Rounds      int
	HandsPlayed int
	Blackjacks  int
	Busts       int
	DealerBusts int
	Splits      int
	DoubleDowns int
	Reshuffles  int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// WinRate calculates the player's win rate as a percentage of resolved hands
func (s *SessionStatistics) WinRate() float64 {
	if s.Record.Total() == 0 {
		return 0.0
	}
	return float64(s.Record.Wins) / float64(s.Record.Total()) * 100.0
}

// Duration is the wall time between the first deal and the final resolution
func (s *SessionStatistics) Duration() time.Duration {
	if s.FinishedAt.Before(s.StartedAt) {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
