package time

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/port/core"
)

// ManualClock is a TimeProvider and Scheduler that only moves when told to.
// Scheduled callbacks run synchronously inside Advance.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTask
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current simulated time
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since returns the simulated time elapsed since t
func (c *ManualClock) Since(t time.Time) core.Duration {
	return core.Duration(c.Now().Sub(t))
}

// WithTimeout uses a real timer; simulated time does not expire contexts
func (c *ManualClock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Schedule arms fn to run when the clock has been advanced past the delay
func (c *ManualClock) Schedule(after core.Duration, fn func()) core.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTask{
		clock:    c,
		deadline: c.now.Add(after.Std()),
		seq:      c.seq,
		fn:       fn,
	}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by d, running due callbacks in deadline
// order. The clock reads each callback's deadline while it runs. Callbacks
// scheduled by other callbacks fire too when they fall inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.deadline
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of armed callbacks
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *ManualClock) popDue(target time.Time) *manualTask {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		a, b := c.pending[i], c.pending[j]
		if a.deadline.Equal(b.deadline) {
			return a.seq < b.seq
		}
		return a.deadline.Before(b.deadline)
	})
	next := c.pending[0]
	if next.deadline.After(target) {
		return nil
	}
	c.pending = c.pending[1:]
	return next
}

func (c *ManualClock) remove(t *manualTask) bool {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return true
		}
	}
	return false
}

type manualTask struct {
	clock    *ManualClock
	deadline time.Time
	seq      uint64
	fn       func()
}

func (t *manualTask) Cancel() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.clock.remove(t)
}
