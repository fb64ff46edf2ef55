package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjacksim/pkg/entities"
)

func session(strategy string, wins, losses, draws int) entities.SessionStatistics {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return entities.SessionStatistics{
		SessionID:   strategy + "-session",
		Strategy:    strategy,
		Record:      entities.Record{Wins: wins, Losses: losses, Draws: draws},
		Rounds:      wins + losses + draws,
		HandsPlayed: wins + losses + draws,
		Busts:       losses / 2,
		StartedAt:   start,
		FinishedAt:  start.Add(time.Second),
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(session("basic", 4, 4, 2))

	assert.Equal(t, "basic", summary.Strategy)
	assert.Equal(t, 1, summary.Sessions)
	assert.InDelta(t, 0.4, summary.WinRate(), 1e-9)
	assert.InDelta(t, 0.4, summary.LossRate(), 1e-9)
	assert.InDelta(t, 0.2, summary.DrawRate(), 1e-9)
	assert.InDelta(t, 0.2, summary.BustRate(), 1e-9)
	assert.Equal(t, 0, summary.Net())
	assert.Equal(t, time.Second, summary.Duration)
}

func TestRatesOfEmptySummary(t *testing.T) {
	summary := &Summary{}
	assert.Zero(t, summary.WinRate())
	assert.Zero(t, summary.BustRate())
}

func TestAggregate(t *testing.T) {
	total := Aggregate(
		Summarize(session("basic", 5, 3, 2)),
		nil,
		Summarize(session("basic", 1, 8, 1)),
	)

	assert.Equal(t, "basic", total.Strategy)
	assert.Equal(t, 2, total.Sessions)
	assert.Equal(t, entities.Record{Wins: 6, Losses: 11, Draws: 3}, total.Record)
	assert.Equal(t, 20, total.HandsPlayed)
	assert.Equal(t, 2*time.Second, total.Duration)
}

func TestAggregateMixedStrategies(t *testing.T) {
	total := Aggregate(
		Summarize(session("basic", 1, 0, 0)),
		Summarize(session("random", 0, 1, 0)),
		Summarize(session("basic", 1, 0, 0)),
	)
	assert.Equal(t, Mixed, total.Strategy)
}

func TestRankStrategies(t *testing.T) {
	ranks := RankStrategies([]*Summary{
		Summarize(session("random", 3, 7, 0)),
		Summarize(session("basic", 4, 5, 1)),
		Summarize(session("random", 2, 8, 0)),
		Summarize(session("qlearning", 0, 0, 0)),
	})

	require.Len(t, ranks, 2, "strategies without resolved hands are skipped")

	assert.Equal(t, "basic", ranks[0].Strategy)
	assert.Equal(t, 1, ranks[0].Rank)
	assert.True(t, ranks[0].IsTopWinner)
	assert.False(t, ranks[0].IsMostPlayed)

	assert.Equal(t, "random", ranks[1].Strategy)
	assert.Equal(t, 2, ranks[1].Rank)
	assert.Equal(t, 2, ranks[1].Sessions)
	assert.True(t, ranks[1].IsMostPlayed)
}
