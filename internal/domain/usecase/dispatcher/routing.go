package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/usecase"
)

// Click routes a single or repeating click to the active face and applies
// the default action when the face leaves it unhandled
func (d *Dispatcher) Click(ctx context.Context, button entity.Button, count uint8) {
	_, span := d.tracer.Start(ctx, "dispatcher.click", trace.WithAttributes(
		d.faceAttribute(),
		attribute.String("button", button.String()),
		attribute.Int("count", int(count)),
	))
	defer span.End()

	face := d.active()

	switch button {
	case entity.ButtonSelect:
		if h, ok := face.(usecase.SelectHandler); !ok || !h.ClickSelect() {
			d.refresh()
		}

	case entity.ButtonUp:
		if h, ok := face.(usecase.UpHandler); ok {
			h.ClickUp(count)
		}

	case entity.ButtonDown:
		if h, ok := face.(usecase.DownHandler); !ok || !h.ClickDown(count) {
			next := (d.ActiveIndex() + 1) % len(d.faces)
			d.switchTo(next)
		}

	case entity.ButtonBack:
		d.silence()
		d.refresh()
	}

	d.silence()
}

// LongClick routes a long press. Only SELECT has a handler.
func (d *Dispatcher) LongClick(ctx context.Context, button entity.Button) {
	_, span := d.tracer.Start(ctx, "dispatcher.long_click", trace.WithAttributes(
		d.faceAttribute(),
		attribute.String("button", button.String()),
	))
	defer span.End()

	if button == entity.ButtonSelect {
		if h, ok := d.active().(usecase.LongSelectHandler); ok {
			h.ClickLongSelect()
		}
	}

	d.silence()
}

// MultiClick routes rapid repeated presses. A double BACK toggles the
// display inversion.
func (d *Dispatcher) MultiClick(ctx context.Context, button entity.Button, count uint8) {
	_, span := d.tracer.Start(ctx, "dispatcher.multi_click", trace.WithAttributes(
		d.faceAttribute(),
		attribute.String("button", button.String()),
		attribute.Int("count", int(count)),
	))
	defer span.End()

	if button == entity.ButtonBack && count == 2 {
		d.ToggleInvert()
	}

	d.silence()
}

// Tick forwards a wall-clock update to the active face
func (d *Dispatcher) Tick(now time.Time, changed entity.TimeUnits) {
	d.active().Tick(now, changed)
}

// ToggleInvert flips the display inversion and records it in the selection
func (d *Dispatcher) ToggleInvert() {
	inverted := !d.display.Invert()
	d.display.SetInvert(inverted)
	d.selection.DisplayInverted = inverted
}

// Activate makes face i the visible face
func (d *Dispatcher) Activate(ctx context.Context, i int) error {
	_, span := d.tracer.Start(ctx, "dispatcher.activate", trace.WithAttributes(
		d.faceAttribute(),
		attribute.Int("index", i),
	))
	defer span.End()

	if i < 0 || i >= len(d.faces) {
		return fmt.Errorf("%w: %d of %d", errs.ErrInvalidFaceIndex, i, len(d.faces))
	}
	if i == d.ActiveIndex() {
		return nil
	}

	d.switchTo(i)
	return nil
}

// switchTo unloads the active face before the index moves and loads the
// new face after it
func (d *Dispatcher) switchTo(i int) {
	from := d.active()
	from.Unload()
	d.selection.ActiveFaceIndex = int32(i)
	to := d.active()
	to.Load()

	d.logger.Info("Face switched", map[string]any{
		"from":  from.Name(),
		"to":    to.Name(),
		"index": i,
	})
}

// refresh redraws the active face from the wall clock
func (d *Dispatcher) refresh() {
	d.active().Tick(d.timeProvider.Now(), entity.ClockUnits)
}

// silence tells every face able to alert to stop, active or not
func (d *Dispatcher) silence() {
	for _, face := range d.faces {
		if s, ok := face.(usecase.Silencer); ok {
			s.Silence()
		}
	}
}
