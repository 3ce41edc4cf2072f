package stopwatch

import "github.com/amirhossein-jamali/digichron/internal/domain/entity"

// refresh redraws the running elapsed time and re-arms the refresh timer.
// It does nothing unless the stopwatch is running on screen.
func (f *Face) refresh() {
	if f.state.Mode != entity.StopwatchRunning || !f.state.Visible {
		return
	}

	elapsed := entity.Diff(f.now(), f.state.Start)

	f.cancelTask()
	interval := slowInterval
	if elapsed.Seconds < maxFastSeconds {
		interval = fastInterval
	}
	f.task = f.scheduler.Schedule(interval, f.onTimer)

	shown := elapsed.RoundUpTenth()
	f.display.SetInterval(shown.Seconds, shown.Milliseconds)
}

func (f *Face) onTimer() {
	f.task = nil
	f.refresh()
}

func (f *Face) cancelTask() {
	if f.task != nil {
		f.task.Cancel()
		f.task = nil
	}
}

// captureSplit records split and lap at now and starts the next lap
func (f *Face) captureSplit(now entity.TimeInterval) {
	f.state.CumulativeLap = entity.Diff(now, f.state.LastSplitBase)
	f.state.CumulativeSplit = entity.Diff(now, f.state.Start)
	f.state.LastSplitBase = now
}
