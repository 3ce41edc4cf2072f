package stopwatch

import (
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/display"
)

// View titles
const (
	titleSplit = "SPLT"
	titleLap   = "LAP"
)

// Refresh cadence of the running display
const (
	fastInterval = 200 * coreport.Millisecond
	slowInterval = 1000 * coreport.Millisecond
	// maxFastSeconds is how long hundredths keep updating at the fast cadence
	maxFastSeconds = 300
)

// Face times intervals, capturing split times (since the start) and lap
// times (since the previous split).
type Face struct {
	info         entity.FaceInfo
	state        entity.StopwatchState
	display      display.Display
	timeProvider coreport.TimeProvider
	scheduler    coreport.Scheduler
	logger       coreport.Logger
	task         coreport.Task
}

// New creates a stopwatch face. Nothing is drawn until Load.
func New(
	info entity.FaceInfo,
	display display.Display,
	timeProvider coreport.TimeProvider,
	scheduler coreport.Scheduler,
	logger coreport.Logger,
) *Face {
	return &Face{
		info:         info,
		display:      display,
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

// State returns the live stopwatch record
func (f *Face) State() entity.Record {
	return &f.state
}

// Load draws the face for its current mode and resumes the refresh timer
// when running
func (f *Face) Load() {
	f.state.Visible = true
	f.draw()
}

// Unload stops display refreshes. Timing continues from the stored anchors.
func (f *Face) Unload() {
	f.cancelTask()
	f.state.Visible = false
	f.display.Clear()
}

// Tick refreshes the elapsed time while running
func (f *Face) Tick(_ time.Time, _ entity.TimeUnits) {
	f.refresh()
}

func (f *Face) draw() {
	switch f.state.Mode {
	case entity.StopwatchRunning:
		f.display.SetHighlight(entity.HighlightNone)
		f.display.SetTitle(f.info.Name)
		f.refresh()
	case entity.StopwatchSplit:
		f.showInterval(f.state.CumulativeSplit, titleSplit, entity.HighlightNone)
	case entity.StopwatchLap:
		f.showInterval(f.state.CumulativeLap, titleLap, entity.HighlightNone)
	case entity.StopwatchPausedAtSplit:
		f.showInterval(f.state.CumulativeSplit, titleSplit, entity.HighlightSeconds)
	case entity.StopwatchPausedAtLap:
		f.showInterval(f.state.CumulativeLap, titleLap, entity.HighlightSeconds)
	default:
		f.showInterval(entity.TimeInterval{}, f.info.Name, entity.HighlightNone)
	}
}

func (f *Face) showInterval(interval entity.TimeInterval, title string, highlight entity.HighlightField) {
	f.display.SetInterval(interval.Seconds, interval.Milliseconds)
	f.display.SetTitle(title)
	f.display.SetHighlight(highlight)
}

func (f *Face) now() entity.TimeInterval {
	return entity.IntervalFromTime(f.timeProvider.Now())
}

func (f *Face) transition(to entity.StopwatchMode) {
	f.logger.Debug("Stopwatch transition", map[string]any{
		"face": f.info.Name,
		"from": f.state.Mode.String(),
		"to":   to.String(),
	})
	f.state.Mode = to
}
