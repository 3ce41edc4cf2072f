package countdown

import "github.com/amirhossein-jamali/digichron/internal/domain/entity"

// ClickSelect starts, pauses and resumes the countdown, and moves between
// fields while editing
func (f *Face) ClickSelect() bool {
	switch f.state.Mode {
	case entity.CountdownIdle:
		now := f.timeProvider.Now().Unix()
		f.state.StartedAt = now
		f.state.EndAt = now + int64(f.state.ConfiguredDuration)
		f.state.RemainingAtPause = f.state.ConfiguredDuration
		f.transition(entity.CountdownRunning)
		f.drawSeconds(f.remaining())
		f.arm()

	case entity.CountdownRunning:
		f.cancelTask()
		f.state.RemainingAtPause = int32(max(f.remaining(), 0))
		f.transition(entity.CountdownStopped)
		f.drawSeconds(int64(f.state.RemainingAtPause))

	case entity.CountdownStopped:
		now := f.timeProvider.Now().Unix()
		f.state.StartedAt = now
		f.state.EndAt = now + int64(f.state.RemainingAtPause)
		f.transition(entity.CountdownRunning)
		f.drawSeconds(f.remaining())
		f.arm()

	case entity.CountdownSetHours:
		f.edit(entity.CountdownSetSeconds)
	case entity.CountdownSetMinutes:
		f.edit(entity.CountdownSetHours)
	case entity.CountdownSetSeconds:
		f.edit(entity.CountdownSetMinutes)
	}

	return true
}

// ClickLongSelect toggles between the idle timer and editing the duration
func (f *Face) ClickLongSelect() bool {
	switch {
	case f.state.Mode == entity.CountdownIdle:
		f.drawConfigured()
		f.edit(entity.CountdownSetMinutes)
	case f.state.Mode.IsEditing():
		f.transition(entity.CountdownIdle)
		f.display.SetHighlight(entity.HighlightNone)
	}
	return true
}

// ClickUp raises the edited field, or cancels a running or stopped countdown
func (f *Face) ClickUp(count uint8) bool {
	switch {
	case f.state.Mode.IsEditing():
		unit := fieldSeconds(f.state.Mode)
		n := stepFor(count)
		for n > 0 && f.state.ConfiguredDuration > entity.MaxCountdownSeconds-unit*n {
			n--
		}
		f.state.ConfiguredDuration += unit * n
		f.drawConfigured()

	case f.state.Mode == entity.CountdownRunning, f.state.Mode == entity.CountdownStopped:
		f.cancelTask()
		f.transition(entity.CountdownIdle)
		f.drawConfigured()

	default:
		return false
	}
	return true
}

// ClickDown lowers the edited field. Outside editing the dispatcher moves
// on to the next face.
func (f *Face) ClickDown(count uint8) bool {
	if !f.state.Mode.IsEditing() {
		return false
	}

	unit := fieldSeconds(f.state.Mode)
	n := stepFor(count)
	for n > 0 && f.state.ConfiguredDuration < unit*n {
		n--
	}
	if n > 0 {
		f.state.ConfiguredDuration -= unit * n
		f.drawConfigured()
	}
	return true
}

func (f *Face) edit(mode entity.CountdownMode) {
	f.transition(mode)
	f.display.SetHighlight(editHighlight(mode))
}

// stepFor scales the adjustment with the button repeat count
func stepFor(count uint8) int32 {
	switch {
	case count > 10:
		return 10
	case count > 5:
		return 5
	default:
		return 1
	}
}

func fieldSeconds(mode entity.CountdownMode) int32 {
	switch mode {
	case entity.CountdownSetHours:
		return 3600
	case entity.CountdownSetMinutes:
		return 60
	default:
		return 1
	}
}
