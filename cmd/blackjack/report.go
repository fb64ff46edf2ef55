package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fadedpez/blackjacksim/pkg/services/statistics"
)

func printSummary(w io.Writer, s *statistics.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Strategy:\t%s\n", s.Strategy)
	fmt.Fprintf(tw, "Sessions:\t%d\n", s.Sessions)
	fmt.Fprintf(tw, "Rounds:\t%d\n", s.Rounds)
	fmt.Fprintf(tw, "Hands:\t%d\n", s.HandsPlayed)
	fmt.Fprintf(tw, "Record:\t%d W / %d L / %d D\n", s.Record.Wins, s.Record.Losses, s.Record.Draws)
	fmt.Fprintf(tw, "Win rate:\t%.1f%%\n", s.WinRate()*100)
	fmt.Fprintf(tw, "Draw rate:\t%.1f%%\n", s.DrawRate()*100)
	fmt.Fprintf(tw, "Net:\t%+d\n", s.Net())
	fmt.Fprintf(tw, "Blackjacks:\t%d\n", s.Blackjacks)
	fmt.Fprintf(tw, "Busts:\t%d (dealer %d)\n", s.Busts, s.DealerBusts)
	fmt.Fprintf(tw, "Splits / doubles:\t%d / %d\n", s.Splits, s.DoubleDowns)
	fmt.Fprintf(tw, "Reshuffles:\t%d\n", s.Reshuffles)
	fmt.Fprintf(tw, "Duration:\t%s\n", s.Duration)
	tw.Flush()
}

func printRanking(w io.Writer, ranks []*statistics.StrategyRank) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tStrategy\tSessions\tHands\tWin\tLoss\tDraw\tNet")
	for _, r := range ranks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.1f%%\t%.1f%%\t%.1f%%\t%+d\n",
			r.Rank, r.Strategy, r.Sessions, r.HandsPlayed,
			r.WinRate()*100, r.LossRate()*100, r.DrawRate()*100, r.Net())
	}
	tw.Flush()
}
