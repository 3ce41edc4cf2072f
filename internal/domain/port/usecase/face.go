package usecase

import (
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
)

// Face is one watch mode. Load, Unload and Tick are mandatory; clicks and
// silence are optional capabilities discovered by type assertion.
type Face interface {
	Name() string
	Key() uint32
	// State returns the live record so it can be restored and persisted in place
	State() entity.Record
	// Load makes the face visible and draws it
	Load()
	// Unload hides the face; it must stop writing to the display
	Unload()
	Tick(now time.Time, changed entity.TimeUnits)
}

// SelectHandler handles a single SELECT click. Returning false asks the
// dispatcher to refresh the display from the wall clock.
type SelectHandler interface {
	ClickSelect() bool
}

// LongSelectHandler handles a long SELECT press
type LongSelectHandler interface {
	ClickLongSelect() bool
}

// UpHandler handles UP with the platform repeat count
type UpHandler interface {
	ClickUp(count uint8) bool
}

// DownHandler handles DOWN with the platform repeat count. Returning false
// asks the dispatcher to switch to the next face.
type DownHandler interface {
	ClickDown(count uint8) bool
}

// Silencer stops any alert the face is sounding. It is called on every
// face after each click, active or not.
type Silencer interface {
	Silence()
}
