package clock

import (
	"strings"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/display"
)

// Face shows the wall-clock time with either the date or the weekday in
// the title area. The face name is shown briefly after each load.
type Face struct {
	info         entity.FaceInfo
	state        entity.ClockState
	display      display.Display
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// New creates a clock face. Nothing is drawn until Load.
func New(
	info entity.FaceInfo,
	display display.Display,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Face {
	return &Face{
		info:         info,
		display:      display,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (f *Face) Name() string {
	return f.info.Name
}

func (f *Face) Key() uint32 {
	return f.info.Key
}

// State returns the live clock record
func (f *Face) State() entity.Record {
	return &f.state
}

// Load draws the time and puts the face name over the date until the
// suppress counter runs out
func (f *Face) Load() {
	f.display.SetTime(f.timeProvider.Now(), entity.ClockUnits, entity.StyleDefault)
	f.display.SetTitle(f.info.Name)
	f.state.DaySuppressCounter = 1
}

func (f *Face) Unload() {
	f.display.Clear()
}

// Tick redraws the changed fields. The date area is redrawn when the day
// changes or when the suppress counter reaches zero.
func (f *Face) Tick(now time.Time, changed entity.TimeUnits) {
	if changed.Has(entity.DayUnit) || f.state.DaySuppressCounter == 0 {
		layout := "Jan 02"
		if f.state.ShowWeekdayInsteadOfDate {
			layout = "Mon"
		}
		f.display.SetTitle(strings.ToUpper(now.Format(layout)))
		f.state.DaySuppressCounter = -1
	}

	f.display.SetTime(now, changed&^entity.DayUnit, entity.StyleDefault)

	if f.state.DaySuppressCounter > 0 {
		f.state.DaySuppressCounter--
	}
}

// ClickSelect switches between date and weekday. It reports false so the
// dispatcher's refresh redraws the date area right away.
func (f *Face) ClickSelect() bool {
	f.state.ShowWeekdayInsteadOfDate = !f.state.ShowWeekdayInsteadOfDate
	f.state.DaySuppressCounter = 1
	f.logger.Debug("Clock date style changed", map[string]any{
		"face":    f.info.Name,
		"weekday": f.state.ShowWeekdayInsteadOfDate,
	})
	return false
}
