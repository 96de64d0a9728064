// Package schedule runs delayed work that is cancelled with its owner.
package schedule

import (
	"context"
	"sync"
	"time"
)

type Scheduler struct {
	clock  Clock
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	tasks  map[*Task]struct{}
	closed bool
	wg     sync.WaitGroup
}

// Task is one pending call scheduled with After.
type Task struct {
	s        *Scheduler
	timer    Timer
	done     bool
	finished chan struct{}
}

func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[*Task]struct{}),
	}
}

func (s *Scheduler) Clock() Clock {
	return s.clock
}

// After runs fn once d has elapsed. fn receives a context that is cancelled
// when the scheduler closes. Scheduling on a closed scheduler does nothing.
func (s *Scheduler) After(d time.Duration, fn func(ctx context.Context)) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{s: s, finished: make(chan struct{})}
	if s.closed {
		t.done = true
		close(t.finished)
		return t
	}

	s.tasks[t] = struct{}{}
	s.wg.Add(1)
	t.timer = s.clock.AfterFunc(d, func() { s.fire(t, fn) })
	return t
}

func (s *Scheduler) fire(t *Task, fn func(ctx context.Context)) {
	s.mu.Lock()
	if t.done {
		s.mu.Unlock()
		return
	}
	t.done = true
	delete(s.tasks, t)
	ctx := s.ctx
	s.mu.Unlock()

	defer s.wg.Done()
	defer close(t.finished)
	fn(ctx)
}

// Cancel stops the task if it has not started yet.
func (t *Task) Cancel() bool {
	s := t.s
	s.mu.Lock()
	if t.done {
		s.mu.Unlock()
		return false
	}
	t.done = true
	delete(s.tasks, t)
	s.mu.Unlock()

	t.timer.Stop()
	close(t.finished)
	s.wg.Done()
	return true
}

// Done is closed once the task has run to completion or been cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.finished
}

// Pending counts tasks that are scheduled but have not started.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Wait blocks until every scheduled task has run or been cancelled,
// including tasks scheduled by running tasks.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Close cancels all pending tasks and the context handed to running ones.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancel()

	pending := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		t.done = true
		pending = append(pending, t)
	}
	s.tasks = make(map[*Task]struct{})
	s.mu.Unlock()

	for _, t := range pending {
		t.timer.Stop()
		close(t.finished)
		s.wg.Done()
	}
}
