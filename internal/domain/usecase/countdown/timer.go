package countdown

import "github.com/amirhossein-jamali/digichron/internal/domain/entity"

// arm schedules the next 1 Hz check, replacing any outstanding one
func (f *Face) arm() {
	f.cancelTask()
	f.task = f.scheduler.Schedule(tickInterval, f.onTimer)
}

func (f *Face) onTimer() {
	f.task = nil

	switch f.state.Mode {
	case entity.CountdownRunning:
		if remaining := f.remaining(); remaining <= 0 {
			f.expire()
		} else if f.visible {
			f.drawSeconds(remaining)
		}
		f.arm()
	case entity.CountdownAlerting:
		f.vibrator.ShortPulse()
		f.arm()
	}
}

func (f *Face) cancelTask() {
	if f.task != nil {
		f.task.Cancel()
		f.task = nil
	}
}
