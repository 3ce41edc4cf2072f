package countdown

import (
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/device"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/display"
)

const (
	tickInterval = coreport.Second
	countUnits   = entity.HourUnit | entity.MinuteUnit | entity.SecondUnit
)

// Face is a countdown timer with a settable duration of up to 23:59:59.
// The background task keeps running while the face is hidden so an expired
// timer can still alert.
type Face struct {
	info         entity.FaceInfo
	state        entity.CountdownState
	visible      bool
	display      display.Display
	vibrator     device.Vibrator
	timeProvider coreport.TimeProvider
	scheduler    coreport.Scheduler
	logger       coreport.Logger
	task         coreport.Task
}

// New creates a countdown face. Nothing is drawn until Load.
func New(
	info entity.FaceInfo,
	display display.Display,
	vibrator device.Vibrator,
	timeProvider coreport.TimeProvider,
	scheduler coreport.Scheduler,
	logger coreport.Logger,
) *Face {
	return &Face{
		info:         info,
		display:      display,
		vibrator:     vibrator,
		timeProvider: timeProvider,
		scheduler:    scheduler,
		logger:       logger,
	}
}

func (f *Face) Name() string {
	return f.info.Name
}

func (f *Face) Key() uint32 {
	return f.info.Key
}

// State returns the live countdown record
func (f *Face) State() entity.Record {
	return &f.state
}

// Load redraws the face from the stored values and re-arms the task from
// the current remaining time
func (f *Face) Load() {
	f.visible = true
	f.cancelTask()

	switch f.state.Mode {
	case entity.CountdownRunning:
		if remaining := f.remaining(); remaining <= 0 {
			f.expire()
		} else {
			f.drawSeconds(remaining)
			f.display.SetHighlight(entity.HighlightNone)
		}
	case entity.CountdownStopped:
		f.drawSeconds(int64(f.state.RemainingAtPause))
		f.display.SetHighlight(entity.HighlightNone)
	case entity.CountdownAlerting:
		f.drawSeconds(0)
		f.display.SetHighlight(entity.HighlightDate)
	case entity.CountdownClearedPendingRedraw:
		f.transition(entity.CountdownIdle)
		f.drawConfigured()
		f.display.SetHighlight(entity.HighlightNone)
	default:
		f.drawConfigured()
		f.display.SetHighlight(editHighlight(f.state.Mode))
	}

	if f.isTiming() {
		f.arm()
	}
	f.display.SetTitle(f.info.Name)
}

// Unload hides the face. A running or alerting timer keeps its task.
func (f *Face) Unload() {
	f.visible = false
	if f.isTiming() {
		f.arm()
	} else {
		f.cancelTask()
	}
	f.display.Clear()
}

// Tick redraws the remaining time and finishes a silenced alert
func (f *Face) Tick(_ time.Time, _ entity.TimeUnits) {
	if !f.visible {
		return
	}

	switch f.state.Mode {
	case entity.CountdownRunning:
		if remaining := f.remaining(); remaining <= 0 {
			f.expire()
		} else {
			f.drawSeconds(remaining)
		}
	case entity.CountdownClearedPendingRedraw:
		f.transition(entity.CountdownIdle)
		f.drawConfigured()
	}
}

// Silence stops an alert. The display returns to the configured duration on
// the next tick or load.
func (f *Face) Silence() {
	if f.state.Mode != entity.CountdownAlerting {
		return
	}
	f.transition(entity.CountdownClearedPendingRedraw)
	f.cancelTask()
	if f.visible {
		f.display.SetHighlight(entity.HighlightNone)
	}
}

func (f *Face) isTiming() bool {
	return f.state.Mode == entity.CountdownRunning || f.state.Mode == entity.CountdownAlerting
}

// remaining is the number of whole seconds until the end time
func (f *Face) remaining() int64 {
	return f.state.EndAt - f.timeProvider.Now().Unix()
}

// expire moves a finished countdown into the alert
func (f *Face) expire() {
	f.transition(entity.CountdownAlerting)
	f.state.RemainingAtPause = 0
	if f.visible {
		f.drawSeconds(0)
		f.display.SetHighlight(entity.HighlightDate)
	}
	f.vibrator.ShortPulse()
	f.logger.Info("Countdown expired", map[string]any{
		"face":     f.info.Name,
		"duration": f.state.ConfiguredDuration,
	})
}

// drawSeconds shows a second count as hours, minutes and seconds
func (f *Face) drawSeconds(seconds int64) {
	f.display.SetTime(time.Unix(seconds, 0).UTC(), countUnits, entity.Style24Hour)
}

func (f *Face) drawConfigured() {
	f.drawSeconds(int64(f.state.ConfiguredDuration))
}

func (f *Face) transition(to entity.CountdownMode) {
	f.logger.Debug("Countdown transition", map[string]any{
		"face": f.info.Name,
		"from": f.state.Mode.String(),
		"to":   to.String(),
	})
	f.state.Mode = to
}

func editHighlight(mode entity.CountdownMode) entity.HighlightField {
	switch mode {
	case entity.CountdownSetHours:
		return entity.HighlightHours
	case entity.CountdownSetMinutes:
		return entity.HighlightMinutes
	case entity.CountdownSetSeconds:
		return entity.HighlightSeconds
	default:
		return entity.HighlightNone
	}
}
