package display

import (
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
)

// Display is the single shared watch display. Faces push semantic field
// updates; layout and glyphs belong to the implementation.
type Display interface {
	// SetTitle shows a short title; some layouts share this area with the date
	SetTitle(title string)
	// SetTime redraws the fields selected by units from t
	SetTime(t time.Time, units entity.TimeUnits, style entity.TimeStyle)
	// SetInterval shows an elapsed time since some starting point
	SetInterval(seconds int64, milliseconds uint16)
	SetHighlight(field entity.HighlightField)
	// Clear resets every face-owned field
	Clear()
	SetInvert(inverted bool)
	Invert() bool
	SetBattery(percent uint8, charging bool)
	SetBluetooth(connected bool)
}
