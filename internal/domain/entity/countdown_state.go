package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
)

// MaxCountdownSeconds is the longest configurable countdown, 23:59:59
const MaxCountdownSeconds = 23*3600 + 59*60 + 59

// CountdownMode is the countdown timer state machine state
type CountdownMode uint8

const (
	CountdownIdle CountdownMode = iota
	CountdownSetHours
	CountdownSetMinutes
	CountdownSetSeconds
	CountdownRunning
	CountdownStopped
	CountdownAlerting
	CountdownClearedPendingRedraw
)

func (m CountdownMode) String() string {
	switch m {
	case CountdownIdle:
		return "idle"
	case CountdownSetHours:
		return "set_hours"
	case CountdownSetMinutes:
		return "set_minutes"
	case CountdownSetSeconds:
		return "set_seconds"
	case CountdownRunning:
		return "running"
	case CountdownStopped:
		return "stopped"
	case CountdownAlerting:
		return "alerting"
	case CountdownClearedPendingRedraw:
		return "cleared_pending_redraw"
	default:
		return fmt.Sprintf("countdown_mode(%d)", uint8(m))
	}
}

// IsEditing reports whether one of the duration fields is being edited
func (m CountdownMode) IsEditing() bool {
	return m == CountdownSetHours || m == CountdownSetMinutes || m == CountdownSetSeconds
}

// CountdownState is the persisted countdown timer record.
//
// Layout (little endian, 128 bytes):
//
//	0   mode               uint8
//	1   reserved           3 bytes
//	4   configuredDuration int32 seconds
//	8   startedAt          int64 unix seconds
//	16  remainingAtPause   int32 seconds
//	20  reserved           4 bytes
//	24  endAt              int64 unix seconds
//	32  reserved           96 bytes
type CountdownState struct {
	Mode               CountdownMode
	ConfiguredDuration int32
	StartedAt          int64
	RemainingAtPause   int32
	EndAt              int64
}

// RecordSize implements Record
func (s *CountdownState) RecordSize() int {
	return FaceRecordSize
}

// MarshalBinary implements encoding.BinaryMarshaler
func (s *CountdownState) MarshalBinary() ([]byte, error) {
	w := newRecordWriter(FaceRecordSize)
	w.u8(uint8(s.Mode))
	w.skip(3)
	w.i32(s.ConfiguredDuration)
	w.i64(s.StartedAt)
	w.i32(s.RemainingAtPause)
	w.skip(4)
	w.i64(s.EndAt)
	return w.bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver is left
// untouched when the record is rejected.
func (s *CountdownState) UnmarshalBinary(data []byte) error {
	r, err := newRecordReader(data, FaceRecordSize)
	if err != nil {
		return err
	}

	var next CountdownState
	next.Mode = CountdownMode(r.u8())
	r.skip(3)
	next.ConfiguredDuration = r.i32()
	next.StartedAt = r.i64()
	next.RemainingAtPause = r.i32()
	r.skip(4)
	next.EndAt = r.i64()

	switch {
	case next.Mode > CountdownClearedPendingRedraw:
		return fmt.Errorf("%w: countdown mode %d", errs.ErrInvalidRecord, next.Mode)
	case next.ConfiguredDuration < 0 || next.ConfiguredDuration > MaxCountdownSeconds:
		return fmt.Errorf("%w: countdown duration %d", errs.ErrInvalidRecord, next.ConfiguredDuration)
	}

	*s = next
	return nil
}
