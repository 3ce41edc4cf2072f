package stopwatch

import "github.com/amirhossein-jamali/digichron/internal/domain/entity"

// ClickSelect starts, pauses or resumes timing
func (f *Face) ClickSelect() bool {
	now := f.now()

	switch f.state.Mode {
	case entity.StopwatchIdle:
		f.state.Start = now
		f.state.LastSplitBase = now
		f.transition(entity.StopwatchRunning)

	case entity.StopwatchRunning:
		f.cancelTask()
		f.state.PausedAt = now
		f.captureSplit(now)
		f.transition(entity.StopwatchPausedAtSplit)

	case entity.StopwatchSplit, entity.StopwatchLap:
		f.transition(entity.StopwatchRunning)

	case entity.StopwatchPausedAtSplit, entity.StopwatchPausedAtLap:
		// Both anchors move by the pause length, even when the pause was
		// taken from the lap view.
		paused := entity.Diff(now, f.state.PausedAt)
		f.state.Start = entity.Sum(f.state.Start, paused)
		f.state.LastSplitBase = entity.Sum(f.state.LastSplitBase, paused)
		f.state.PausedAt = entity.TimeInterval{}
		f.transition(entity.StopwatchRunning)

	default:
		return false
	}

	f.draw()
	return true
}

// ClickUp captures a split while running and flips between the split and
// lap views otherwise
func (f *Face) ClickUp(_ uint8) bool {
	switch f.state.Mode {
	case entity.StopwatchRunning:
		f.cancelTask()
		f.captureSplit(f.now())
		f.transition(entity.StopwatchSplit)
	case entity.StopwatchSplit:
		f.transition(entity.StopwatchLap)
	case entity.StopwatchLap:
		f.transition(entity.StopwatchSplit)
	case entity.StopwatchPausedAtSplit:
		f.transition(entity.StopwatchPausedAtLap)
	case entity.StopwatchPausedAtLap:
		f.transition(entity.StopwatchPausedAtSplit)
	default:
		return false
	}

	f.draw()
	return true
}

// ClickLongSelect resets the stopwatch from any mode
func (f *Face) ClickLongSelect() bool {
	f.cancelTask()
	f.state = entity.StopwatchState{Visible: f.state.Visible}
	f.logger.Debug("Stopwatch reset", map[string]any{
		"face": f.info.Name,
	})
	f.draw()
	return true
}
