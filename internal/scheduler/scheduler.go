package scheduler

import (
	"sync"
	"time"

	"auction-marketplace/utils"
)

// Task is a named function run repeatedly on a fixed period.
type Task struct {
	Name   string
	Period time.Duration
	Fn     func()
}

// Scheduler drives background tasks concurrently with foreground
// client calls. Each task re-arms its timer from within its own tick,
// so a stop signal issued mid-tick lets the tick finish but prevents
// the next one from being scheduled. One tick's failure never aborts
// subsequent ticks.
type Scheduler struct {
	mu       sync.Mutex
	tasks    []Task
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// New creates a Scheduler with no tasks.
func New() *Scheduler {
	return &Scheduler{
		stop: make(chan struct{}),
	}
}

// Add registers a task. Tasks added after Start are ignored.
func (s *Scheduler) Add(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		utils.Warn("scheduler: task added after start, ignored", map[string]any{"task": t.Name})
		return
	}
	s.tasks = append(s.tasks, t)
}

// Start launches every registered task in its own goroutine.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, t := range s.tasks {
		s.wg.Add(1)
		go s.run(t)
	}
}

// Stop halts all future ticks. In-flight ticks finish; Stop does not
// wait for them and is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Wait blocks until every task goroutine has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) run(t Task) {
	defer s.wg.Done()

	timer := time.NewTimer(t.Period)
	defer timer.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-timer.C:
		}

		// stop is checked again at the top of the tick: if it raced
		// with the timer, the tick must not run.
		select {
		case <-s.stop:
			return
		default:
		}

		s.runOnce(t)

		// re-arm only from within the tick
		timer.Reset(t.Period)
	}
}

// runOnce executes one tick, isolating panics to that tick.
func (s *Scheduler) runOnce(t Task) {
	defer func() {
		if rec := recover(); rec != nil {
			utils.Error("scheduler: task panicked", map[string]any{
				"task":  t.Name,
				"panic": rec,
			})
		}
	}()
	t.Fn()
}
