package statistics

import (
	"sort"
	"time"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// Mixed names an aggregate built from sessions of different strategies
const Mixed = "mixed"

// Summary is the derived view of one or more finished sessions
type Summary struct {
	Strategy    string          `json:"strategy"`
	Sessions    int             `json:"sessions"`
	Rounds      int             `json:"rounds"`
	HandsPlayed int             `json:"hands_played"`
	Record      entities.Record `json:"record"`
	Blackjacks  int             `json:"blackjacks"`
	Busts       int             `json:"busts"`
	DealerBusts int             `json:"dealer_busts"`
	Splits      int             `json:"splits"`
	DoubleDowns int             `json:"double_downs"`
	Reshuffles  int             `json:"reshuffles"`
	Duration    time.Duration   `json:"duration"`
}

// Summarize converts the statistics of a single session
func Summarize(stats entities.SessionStatistics) *Summary {
	return &Summary{
		Strategy:    stats.Strategy,
		Sessions:    1,
		Rounds:      stats.Rounds,
		HandsPlayed: stats.HandsPlayed,
		Record:      stats.Record,
		Blackjacks:  stats.Blackjacks,
		Busts:       stats.Busts,
		DealerBusts: stats.DealerBusts,
		Splits:      stats.Splits,
		DoubleDowns: stats.DoubleDowns,
		Reshuffles:  stats.Reshuffles,
		Duration:    stats.Duration(),
	}
}

// Aggregate sums summaries of independent sessions. Nil entries are skipped.
func Aggregate(summaries ...*Summary) *Summary {
	total := &Summary{}
	for _, s := range summaries {
		if s == nil {
			continue
		}

		switch total.Strategy {
		case "":
			total.Strategy = s.Strategy
		case s.Strategy, Mixed:
		default:
			total.Strategy = Mixed
		}

		total.Sessions += s.Sessions
		total.Rounds += s.Rounds
		total.HandsPlayed += s.HandsPlayed
		total.Record = total.Record.Merge(s.Record)
		total.Blackjacks += s.Blackjacks
		total.Busts += s.Busts
		total.DealerBusts += s.DealerBusts
		total.Splits += s.Splits
		total.DoubleDowns += s.DoubleDowns
		total.Reshuffles += s.Reshuffles
		total.Duration += s.Duration
	}
	return total
}

func rate(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of)
}

// WinRate is wins over resolved hands, in [0, 1]
func (s *Summary) WinRate() float64 {
	return rate(s.Record.Wins, s.Record.Total())
}

func (s *Summary) LossRate() float64 {
	return rate(s.Record.Losses, s.Record.Total())
}

func (s *Summary) DrawRate() float64 {
	return rate(s.Record.Draws, s.Record.Total())
}

// BustRate is player busts over hands played
func (s *Summary) BustRate() float64 {
	return rate(s.Busts, s.HandsPlayed)
}

// Net is wins minus losses, one unit per hand
func (s *Summary) Net() int {
	return s.Record.Wins - s.Record.Losses
}

// StrategyRank is a strategy's aggregate with its ranking information
type StrategyRank struct {
	*Summary
	Rank         int  `json:"rank"`
	IsTopWinner  bool `json:"is_top_winner"`
	IsMostPlayed bool `json:"is_most_played"`
}

// RankStrategies aggregates summaries per strategy and orders them by win rate, best first
func RankStrategies(summaries []*Summary) []*StrategyRank {
	byStrategy := make(map[string][]*Summary)
	for _, s := range summaries {
		if s == nil || s.Record.Total() == 0 {
			continue
		}
		byStrategy[s.Strategy] = append(byStrategy[s.Strategy], s)
	}

	ranks := make([]*StrategyRank, 0, len(byStrategy))
	for _, group := range byStrategy {
		ranks = append(ranks, &StrategyRank{Summary: Aggregate(group...)})
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].WinRate() != ranks[j].WinRate() {
			return ranks[i].WinRate() > ranks[j].WinRate()
		}
		return ranks[i].Strategy < ranks[j].Strategy
	})

	if len(ranks) > 0 {
		ranks[0].IsTopWinner = true

		mostPlayedIdx := 0
		for i := 1; i < len(ranks); i++ {
			if ranks[i].HandsPlayed > ranks[mostPlayedIdx].HandsPlayed {
				mostPlayedIdx = i
			}
		}
		ranks[mostPlayedIdx].IsMostPlayed = true
	}

	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks
}
