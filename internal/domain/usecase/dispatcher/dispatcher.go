package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/display"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/usecase"
)

// StateRepository restores and persists fixed-size records
type StateRepository interface {
	Restore(ctx context.Context, key uint32, rec entity.Record) bool
	Persist(ctx context.Context, key uint32, rec entity.Record) error
}

// Dispatcher owns the face list and the active selection, and routes host
// events to the active face. It is not safe for concurrent use; every call
// must come from the host event loop.
type Dispatcher struct {
	faces        []usecase.Face
	selection    entity.ActiveSelection
	display      display.Display
	states       StateRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	tracer       trace.Tracer
	started      bool
	stopped      bool
}

// New creates a dispatcher over faces, in cycling order.
//
// Possible errors:
// - ErrNoFaces: faces is empty
// - ErrReservedFaceKey: a face uses the selection key
// - ErrDuplicateFaceKey: two faces share a key
func New(
	faces []usecase.Face,
	display display.Display,
	states StateRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	tracer trace.Tracer,
) (*Dispatcher, error) {
	if len(faces) == 0 {
		return nil, errs.ErrNoFaces
	}

	owners := make(map[uint32]string, len(faces))
	for _, face := range faces {
		if face.Key() == entity.SelectionKey {
			return nil, fmt.Errorf("%w: face %q uses key %d", errs.ErrReservedFaceKey, face.Name(), face.Key())
		}
		if owner, ok := owners[face.Key()]; ok {
			return nil, fmt.Errorf("%w: key %d used by %q and %q", errs.ErrDuplicateFaceKey, face.Key(), owner, face.Name())
		}
		owners[face.Key()] = face.Name()
	}

	return &Dispatcher{
		faces:        faces,
		display:      display,
		states:       states,
		timeProvider: timeProvider,
		logger:       logger,
		tracer:       tracer,
	}, nil
}

// Start restores the selection, applies the invert mode and loads the
// active face
func (d *Dispatcher) Start(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "dispatcher.start")
	defer span.End()

	if d.started {
		return errs.ErrDispatcherStarted
	}
	d.started = true

	if d.states.Restore(ctx, entity.SelectionKey, &d.selection) {
		if int(d.selection.ActiveFaceIndex) >= len(d.faces) {
			d.logger.Warn("Restored face index out of range, using the first face", map[string]any{
				"index": d.selection.ActiveFaceIndex,
				"faces": len(d.faces),
			})
			d.selection.ActiveFaceIndex = 0
		}
	}

	d.display.SetInvert(d.selection.DisplayInverted)
	d.active().Load()

	span.SetAttributes(d.faceAttribute())
	d.logger.Info("Dispatcher started", map[string]any{
		"face":     d.active().Name(),
		"index":    d.selection.ActiveFaceIndex,
		"inverted": d.selection.DisplayInverted,
	})
	return nil
}

// Stop unloads the active face and persists the selection and every face.
// All records are attempted; failures are joined. Stop is a no-op before
// Start and after the first call.
func (d *Dispatcher) Stop(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "dispatcher.stop")
	defer span.End()

	if !d.started || d.stopped {
		return nil
	}
	d.stopped = true

	var failures []error
	if err := d.states.Persist(ctx, entity.SelectionKey, &d.selection); err != nil {
		failures = append(failures, err)
	}

	d.active().Unload()

	for _, face := range d.faces {
		if err := d.states.Persist(ctx, face.Key(), face.State()); err != nil {
			failures = append(failures, err)
		}
	}

	err := errors.Join(failures...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.Error("Failed to persist state on stop", map[string]any{
			"failures": len(failures),
			"error":    err.Error(),
		})
		return err
	}

	d.logger.Info("Dispatcher stopped", map[string]any{
		"faces": len(d.faces),
	})
	return nil
}

// ActiveIndex returns the index of the visible face
func (d *Dispatcher) ActiveIndex() int {
	return int(d.selection.ActiveFaceIndex)
}

// ActiveFace returns the visible face
func (d *Dispatcher) ActiveFace() usecase.Face {
	return d.active()
}

// Faces returns the faces in cycling order
func (d *Dispatcher) Faces() []usecase.Face {
	return d.faces
}

func (d *Dispatcher) active() usecase.Face {
	return d.faces[d.selection.ActiveFaceIndex]
}

func (d *Dispatcher) faceAttribute() attribute.KeyValue {
	return attribute.String("face", d.active().Name())
}
