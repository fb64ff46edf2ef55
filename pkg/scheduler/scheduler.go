package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/fadedpez/blackjacksim/internal/logging"
)

// Task represents a scheduled task
type Task struct {
	Name      string
	Interval  time.Duration
	Fn        func(context.Context) error
	Immediate bool // run once as soon as the scheduler starts
}

// TaskOption customises a task
type TaskOption func(*Task)

// RunImmediately runs the task once on start, before the first interval elapses
func RunImmediately() TaskOption {
	return func(t *Task) { t.Immediate = true }
}

// Scheduler manages scheduled tasks
type Scheduler struct {
	tasks   []*Task
	running bool
	mutex   sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	clock   quartz.Clock
	logger  *logging.Logger
}

// NewScheduler creates a new scheduler. A nil clock uses the real clock.
func NewScheduler(clock quartz.Clock, logger *logging.Logger) *Scheduler {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = logging.Default
	}
	return &Scheduler{
		tasks:  make([]*Task, 0),
		clock:  clock,
		logger: logger,
	}
}

// AddTask adds a task to the scheduler
func (s *Scheduler) AddTask(name string, interval time.Duration, fn func(context.Context) error, opts ...TaskOption) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task := &Task{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	}
	for _, opt := range opts {
		opt(task)
	}
	s.tasks = append(s.tasks, task)
}

// Running reports whether the scheduler has been started and not stopped
func (s *Scheduler) Running() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.running
}

// Start starts the scheduler. Tickers are created before Start returns.
func (s *Scheduler) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	for _, task := range s.tasks {
		ticker := s.clock.NewTicker(task.Interval, "scheduler", task.Name)
		s.wg.Add(1)
		go s.runTask(ctx, task, ticker)
	}

	s.logger.Info("Scheduler started with %d tasks", len(s.tasks))
}

// Stop stops the scheduler and waits for running tasks to return
func (s *Scheduler) Stop() {
	s.mutex.Lock()
	if !s.running {
		s.mutex.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mutex.Unlock()

	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, task *Task) {
	if err := task.Fn(ctx); err != nil {
		s.logger.Error("Error running task %s: %v", task.Name, err)
	}
}

// runTask runs a task at the specified interval
func (s *Scheduler) runTask(ctx context.Context, task *Task, ticker *quartz.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	if task.Immediate {
		s.logger.Debug("Running task %s immediately on startup", task.Name)
		s.run(ctx, task)
	}

	for {
		select {
		case <-ticker.C:
			s.logger.Debug("Running scheduled task: %s", task.Name)
			s.run(ctx, task)
		case <-ctx.Done():
			s.logger.Debug("Task %s stopped", task.Name)
			return
		}
	}
}
