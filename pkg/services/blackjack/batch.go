package blackjack

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// SessionFactory builds the i-th session of a batch. Each session must own its
// player, strategy and random source.
type SessionFactory func(i int) (*Game, error)

// RunBatch runs n isolated sessions with at most workers running at once.
// Results are indexed by session. The first error cancels the remaining sessions.
func RunBatch(ctx context.Context, n, workers int, factory SessionFactory) ([]entities.SessionStatistics, error) {
	if n <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]entities.SessionStatistics, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			game, err := factory(i)
			if err != nil {
				return err
			}
			if game == nil {
				return types.Errorf(types.ErrInternalError, "session factory returned no game for session %d", i)
			}
			stats, err := game.Run(ctx)
			results[i] = stats
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
