package entity

import "time"

const msPerSecond = 1000

// TimeInterval is a (seconds, milliseconds) pair. Milliseconds stays in [0,999];
// carries and borrows are applied to Seconds.
type TimeInterval struct {
	Seconds      int64
	Milliseconds uint16
}

// Sum returns a + b
func Sum(a, b TimeInterval) TimeInterval {
	return normalize(a.Seconds+b.Seconds, int(a.Milliseconds)+int(b.Milliseconds))
}

// Diff returns a - b
func Diff(a, b TimeInterval) TimeInterval {
	return normalize(a.Seconds-b.Seconds, int(a.Milliseconds)-int(b.Milliseconds))
}

// Compare returns -1, 0 or +1 depending on whether a is shorter than, equal to or longer than b
func Compare(a, b TimeInterval) int {
	switch {
	case a.Seconds < b.Seconds:
		return -1
	case a.Seconds > b.Seconds:
		return 1
	case a.Milliseconds < b.Milliseconds:
		return -1
	case a.Milliseconds > b.Milliseconds:
		return 1
	default:
		return 0
	}
}

func normalize(sec int64, ms int) TimeInterval {
	for ms >= msPerSecond {
		ms -= msPerSecond
		sec++
	}
	for ms < 0 {
		ms += msPerSecond
		sec--
	}
	return TimeInterval{Seconds: sec, Milliseconds: uint16(ms)}
}

// IntervalFromTime samples a wall-clock instant with millisecond resolution
func IntervalFromTime(t time.Time) TimeInterval {
	return TimeInterval{
		Seconds:      t.Unix(),
		Milliseconds: uint16(t.Nanosecond() / int(time.Millisecond)),
	}
}

// IntervalFromDuration truncates d to milliseconds
func IntervalFromDuration(d time.Duration) TimeInterval {
	return normalize(int64(d/time.Second), int((d%time.Second)/time.Millisecond))
}

// Duration converts the interval back to a time.Duration
func (i TimeInterval) Duration() time.Duration {
	return time.Duration(i.Seconds)*time.Second + time.Duration(i.Milliseconds)*time.Millisecond
}

// RoundUpTenth moves the interval up to the next 100 ms boundary so the
// least significant display digit does not jitter between refreshes.
func (i TimeInterval) RoundUpTenth() TimeInterval {
	return Sum(i, TimeInterval{Milliseconds: 100 - i.Milliseconds%100})
}

// IsZero reports whether the interval is exactly zero
func (i TimeInterval) IsZero() bool {
	return i.Seconds == 0 && i.Milliseconds == 0
}
