package display

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
)

const maxIntervalHours = 99

// Snapshot is a copy of every field on the panel, ready for rendering.
// In interval mode AmPm holds the hours ("1H"), Hour the minutes, Minute the
// seconds and Second the hundredths.
type Snapshot struct {
	Date      string
	AmPm      string
	Hour      string
	Minute    string
	Second    string
	Highlight entity.HighlightField
	Inverted  bool
	Battery   string
	Bluetooth bool
}

// Panel keeps the semantic state of the watch display. Title and date share
// one area, so each overwrites the other.
type Panel struct {
	mu        sync.Mutex
	use24Hour bool
	snap      Snapshot
}

// NewPanel creates an empty panel. use24Hour is the default hour style.
func NewPanel(use24Hour bool) *Panel {
	return &Panel{use24Hour: use24Hour}
}

// SetTitle shows a short title in the date area
func (p *Panel) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Date = title
}

// SetTime redraws the fields selected by units
func (p *Panel) SetTime(t time.Time, units entity.TimeUnits, style entity.TimeStyle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if units.Has(entity.DayUnit) {
		p.snap.Date = strings.ToUpper(t.Format("Jan 02"))
	}

	if units&(entity.MinuteUnit|entity.HourUnit) != 0 {
		if style == entity.Style24Hour || (style == entity.StyleDefault && p.use24Hour) {
			p.snap.AmPm = ""
			p.snap.Hour = fmt.Sprintf("%02d", t.Hour())
		} else {
			p.snap.AmPm = "PM"
			if t.Hour() < 12 {
				p.snap.AmPm = "AM"
			}
			hour := t.Hour() % 12
			if hour == 0 {
				hour = 12
			}
			p.snap.Hour = fmt.Sprintf("%2d", hour)
		}
		p.snap.Minute = fmt.Sprintf("%02d", t.Minute())
	}

	if units.Has(entity.SecondUnit) {
		p.snap.Second = fmt.Sprintf("%02d", t.Second())
	}
}

// SetInterval shows an elapsed time. Hundredths are rounded to the nearest
// and carried into seconds; past 99 hours the display saturates at 99:59:59.
func (p *Panel) SetInterval(seconds int64, milliseconds uint16) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hundredths := (int64(milliseconds) + 5) / 10
	for hundredths >= 100 {
		seconds++
		hundredths -= 100
	}

	hours := seconds / 3600
	var minutes, secs int64
	if hours > maxIntervalHours {
		hours, minutes, secs = maxIntervalHours, 59, 59
	} else {
		rest := seconds - hours*3600
		minutes = rest / 60
		secs = rest - minutes*60
	}

	p.snap.AmPm = fmt.Sprintf("%dH", hours)
	p.snap.Hour = fmt.Sprintf("%02d", minutes)
	p.snap.Minute = fmt.Sprintf("%02d", secs)
	p.snap.Second = fmt.Sprintf("%02d", hundredths)
}

func (p *Panel) SetHighlight(field entity.HighlightField) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Highlight = field
}

// Clear blanks the face-owned fields. Status and invert are kept.
func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Date = ""
	p.snap.AmPm = ""
	p.snap.Hour = ""
	p.snap.Minute = ""
	p.snap.Second = ""
	p.snap.Highlight = entity.HighlightNone
}

func (p *Panel) SetInvert(inverted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Inverted = inverted
}

func (p *Panel) Invert() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap.Inverted
}

// SetBattery shows "100" when full, otherwise the percent and a charge marker
func (p *Panel) SetBattery(percent uint8, charging bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if percent >= 100 {
		p.snap.Battery = "100"
		return
	}
	marker := " "
	if charging {
		marker = "+"
	}
	p.snap.Battery = fmt.Sprintf("%d%s", percent, marker)
}

func (p *Panel) SetBluetooth(connected bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Bluetooth = connected
}

// Snapshot returns a copy of the current fields
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}
