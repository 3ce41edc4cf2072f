package time

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/port/core"
)

// Firing is a timer that expired and waits to be run on the event loop
type Firing interface {
	Run()
}

// LoopScheduler arms timers with time.AfterFunc but never runs the callbacks
// on the timer goroutine. Expired timers are queued on Fired and the host
// event loop runs them, so callbacks are serialized with clicks and ticks.
type LoopScheduler struct {
	fired     chan Firing
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoopScheduler creates a scheduler whose firings are buffered up to backlog
func NewLoopScheduler(backlog int) *LoopScheduler {
	return &LoopScheduler{
		fired: make(chan Firing, backlog),
		done:  make(chan struct{}),
	}
}

// Schedule arms fn to run once after the given delay
func (s *LoopScheduler) Schedule(after core.Duration, fn func()) core.Task {
	t := &loopTask{fn: fn}
	t.timer = time.AfterFunc(after.Std(), func() {
		select {
		case s.fired <- t:
		case <-s.done:
		}
	})
	return t
}

// Fired delivers expired tasks to the event loop
func (s *LoopScheduler) Fired() <-chan Firing {
	return s.fired
}

// Close releases timer goroutines blocked on a loop that stopped draining
func (s *LoopScheduler) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// loopTask state is only touched from the event loop goroutine
type loopTask struct {
	timer *time.Timer
	fn    func()
	done  bool
}

// Run executes the callback unless the task was cancelled after its timer fired
func (t *loopTask) Run() {
	if t.done {
		return
	}
	t.done = true
	t.fn()
}

func (t *loopTask) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	t.timer.Stop()
	return true
}
