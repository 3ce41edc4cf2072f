package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the wall clock for the domain
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}

// Task is a pending single-shot callback.
type Task interface {
	// Cancel prevents the callback from running. It reports false when the
	// task already ran or was cancelled before.
	Cancel() bool
}

// Scheduler arms single-shot delayed callbacks. Callbacks run on the same
// goroutine that delivers clicks and ticks, so they never race face handlers.
type Scheduler interface {
	Schedule(after Duration, fn func()) Task
}
