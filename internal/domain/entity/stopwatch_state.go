package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

// StopwatchMode is the stopwatch state machine state
type StopwatchMode uint8

const (
	StopwatchIdle StopwatchMode = iota
	StopwatchRunning
	StopwatchSplit
	StopwatchLap
	StopwatchPausedAtSplit
	StopwatchPausedAtLap
)

func (m StopwatchMode) String() string {
	switch m {
	case StopwatchIdle:
		return "idle"
	case StopwatchRunning:
		return "running"
	case StopwatchSplit:
		return "split"
	case StopwatchLap:
		return "lap"
	case StopwatchPausedAtSplit:
		return "paused_at_split"
	case StopwatchPausedAtLap:
		return "paused_at_lap"
	default:
		return fmt.Sprintf("stopwatch_mode(%d)", uint8(m))
	}
}

// IsPaused reports whether the visible elapsed time is frozen by a pause
func (m StopwatchMode) IsPaused() bool {
	return m == StopwatchPausedAtSplit || m == StopwatchPausedAtLap
}

// StopwatchState is the persisted stopwatch record.
//
// Layout (little endian, 128 bytes):
//
//	0   mode            uint8
//	1   visible         uint8
//	2   reserved        6 bytes
//	8   start           interval (int64 s, uint16 ms)
//	18  lastSplitBase   interval
//	28  cumulativeSplit interval
//	38  cumulativeLap   interval
//	48  pausedAt        interval
//	58  reserved        70 bytes
type StopwatchState struct {
	Mode            StopwatchMode
	Visible         bool
	Start           TimeInterval
	LastSplitBase   TimeInterval
	CumulativeSplit TimeInterval
	CumulativeLap   TimeInterval
	PausedAt        TimeInterval
}

// RecordSize implements Record
func (s *StopwatchState) RecordSize() int {
	return FaceRecordSize
}

// MarshalBinary implements encoding.BinaryMarshaler
func (s *StopwatchState) MarshalBinary() ([]byte, error) {
	w := newRecordWriter(FaceRecordSize)
	w.u8(uint8(s.Mode))
	w.boolean(s.Visible)
	w.skip(6)
	w.interval(s.Start)
	w.interval(s.LastSplitBase)
	w.interval(s.CumulativeSplit)
	w.interval(s.CumulativeLap)
	w.interval(s.PausedAt)
	return w.bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver is left
// untouched when the record is rejected.
func (s *StopwatchState) UnmarshalBinary(data []byte) error {
	r, err := newRecordReader(data, FaceRecordSize)
	if err != nil {
		return err
	}

	var next StopwatchState
	next.Mode = StopwatchMode(r.u8())
	if next.Mode > StopwatchPausedAtLap {
		return fmt.Errorf("%w: stopwatch mode %d", errs.ErrInvalidRecord, next.Mode)
	}
	next.Visible = r.boolean()
	r.skip(6)

	for _, field := range []*TimeInterval{
		&next.Start, &next.LastSplitBase, &next.CumulativeSplit, &next.CumulativeLap, &next.PausedAt,
	} {
		if *field, err = r.interval(); err != nil {
			return err
		}
	}

	*s = next
	return nil
}
