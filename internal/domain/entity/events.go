package entity

import "time"

// TimeUnits is a bitmask of the calendar fields that changed since the last tick
type TimeUnits uint8

const (
	SecondUnit TimeUnits = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit

	// ClockUnits are the fields a forced refresh redraws
	ClockUnits = SecondUnit | MinuteUnit | HourUnit | DayUnit
	// AllUnits marks every field as changed
	AllUnits TimeUnits = 0xff
)

// Has reports whether every unit in u is set
func (t TimeUnits) Has(u TimeUnits) bool {
	return t&u == u
}

// ChangedUnits computes the mask of fields that differ between two wall-clock
// samples. A larger unit changing implies all smaller units changed.
func ChangedUnits(prev, now time.Time) TimeUnits {
	if prev.IsZero() {
		return AllUnits
	}
	switch {
	case prev.Year() != now.Year():
		return SecondUnit | MinuteUnit | HourUnit | DayUnit | MonthUnit | YearUnit
	case prev.Month() != now.Month():
		return SecondUnit | MinuteUnit | HourUnit | DayUnit | MonthUnit
	case prev.Day() != now.Day():
		return SecondUnit | MinuteUnit | HourUnit | DayUnit
	case prev.Hour() != now.Hour():
		return SecondUnit | MinuteUnit | HourUnit
	case prev.Minute() != now.Minute():
		return SecondUnit | MinuteUnit
	default:
		return SecondUnit
	}
}

// Button identifies one of the physical watch buttons
type Button int

const (
	ButtonBack Button = iota
	ButtonUp
	ButtonSelect
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonBack:
		return "back"
	case ButtonUp:
		return "up"
	case ButtonSelect:
		return "select"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

// HighlightField names the display field that receives visual emphasis
type HighlightField int

const (
	HighlightNone HighlightField = iota
	HighlightSeconds
	HighlightMinutes
	HighlightHours
	HighlightAmPm
	HighlightDate
)

func (h HighlightField) String() string {
	switch h {
	case HighlightSeconds:
		return "seconds"
	case HighlightMinutes:
		return "minutes"
	case HighlightHours:
		return "hours"
	case HighlightAmPm:
		return "ampm"
	case HighlightDate:
		return "date"
	default:
		return "none"
	}
}

// TimeStyle overrides the 12/24 hour preference of the display for one write
type TimeStyle int

const (
	StyleAmPm    TimeStyle = -1
	StyleDefault TimeStyle = 0
	Style24Hour  TimeStyle = 1
)
