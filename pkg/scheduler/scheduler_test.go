package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/repositories/values"
	valuesmock "github.com/fadedpez/blackjacksim/pkg/repositories/values/mock"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSchedulerRunsTaskOnEveryTick(t *testing.T) {
	ctx := testContext(t)
	mClock := quartz.NewMock(t)
	s := NewScheduler(mClock, logging.Discard())

	var runs atomic.Int32
	s.AddTask("count", time.Minute, func(context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start(ctx)
	defer s.Stop()

	assert.True(t, s.Running())
	assert.Zero(t, runs.Load())

	mClock.Advance(time.Minute).MustWait(ctx)
	require.Eventually(t, func() bool { return runs.Load() == 1 }, waitFor, tick)

	mClock.Advance(time.Minute).MustWait(ctx)
	require.Eventually(t, func() bool { return runs.Load() == 2 }, waitFor, tick)
}

func TestSchedulerRunImmediately(t *testing.T) {
	ctx := testContext(t)
	s := NewScheduler(quartz.NewMock(t), logging.Discard())

	var runs atomic.Int32
	s.AddTask("startup", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	}, RunImmediately())
	s.Start(ctx)
	defer s.Stop()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, waitFor, tick)
}

func TestSchedulerKeepsRunningAfterTaskError(t *testing.T) {
	ctx := testContext(t)
	mClock := quartz.NewMock(t)
	s := NewScheduler(mClock, logging.Discard())

	var runs atomic.Int32
	s.AddTask("failing", time.Second, func(context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	})
	s.Start(ctx)
	defer s.Stop()

	for i := int32(1); i <= 3; i++ {
		mClock.Advance(time.Second).MustWait(ctx)
		want := i
		require.Eventually(t, func() bool { return runs.Load() == want }, waitFor, tick)
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewScheduler(quartz.NewMock(t), logging.Discard())
	s.AddTask("noop", time.Second, func(context.Context) error { return nil })

	s.Start(testContext(t))
	s.Start(testContext(t))
	s.Stop()
	s.Stop()

	assert.False(t, s.Running())
}

type staticTable struct {
	entries []*entities.ValueEntry
}

func (s staticTable) Snapshot() []*entities.ValueEntry {
	return s.entries
}

func TestCheckpointScheduler(t *testing.T) {
	ctx := testContext(t)
	mClock := quartz.NewMock(t)
	repo := values.NewMemoryRepository()
	source := staticTable{entries: []*entities.ValueEntry{
		{Total: 16, Dealer: 10, Action: "hit", Value: -0.4},
	}}

	checkpoints := NewCheckpointScheduler(NewScheduler(mClock, logging.Discard()), repo, source, "qlearning", 0, logging.Discard())
	checkpoints.Start(ctx)

	mClock.Advance(DefaultCheckpointInterval).MustWait(ctx)
	require.Eventually(t, func() bool { return checkpoints.Saves() == 1 }, waitFor, tick)

	table, err := repo.GetTable(ctx, "qlearning")
	require.NoError(t, err)
	assert.Equal(t, source.entries, table)

	require.NoError(t, checkpoints.Stop(context.Background()))
	assert.Equal(t, int64(2), checkpoints.Saves(), "stop writes a final checkpoint")
}

func TestCheckpointReportsStoreErrors(t *testing.T) {
	repo := values.NewMemoryRepository()
	checkpoints := NewCheckpointScheduler(NewScheduler(quartz.NewMock(t), logging.Discard()), repo, staticTable{}, "bad name", time.Second, logging.Discard())

	err := checkpoints.Checkpoint(context.Background())
	assert.ErrorIs(t, err, values.ErrInvalidTableName)
	assert.Zero(t, checkpoints.Saves())
}

func TestCheckpointTaskSurvivesStoreFailure(t *testing.T) {
	ctx := testContext(t)
	mClock := quartz.NewMock(t)
	repo := valuesmock.New()
	repo.Test(t)

	var failures atomic.Int32
	repo.On("SaveTable", mock.Anything, "qlearning", mock.Anything).Return(errors.New("disk full")).Run(func(mock.Arguments) {
		failures.Add(1)
	}).Once()
	repo.On("SaveTable", mock.Anything, "qlearning", mock.Anything).Return(nil)

	checkpoints := NewCheckpointScheduler(NewScheduler(mClock, logging.Discard()), repo, staticTable{}, "qlearning", time.Second, logging.Discard())
	checkpoints.Start(ctx)

	mClock.Advance(time.Second).MustWait(ctx)
	require.Eventually(t, func() bool { return failures.Load() == 1 }, waitFor, tick)
	assert.Zero(t, checkpoints.Saves())

	mClock.Advance(time.Second).MustWait(ctx)
	require.Eventually(t, func() bool { return checkpoints.Saves() == 1 }, waitFor, tick)

	require.NoError(t, checkpoints.Stop(context.Background()))
	assert.Equal(t, int64(2), checkpoints.Saves())
	repo.AssertNumberOfCalls(t, "SaveTable", 3)
}
