package dispatcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/state"
	coremocks "github.com/amirhossein-jamali/digichron/mocks/port/core"
	displaymocks "github.com/amirhossein-jamali/digichron/mocks/port/display"
	persistencemocks "github.com/amirhossein-jamali/digichron/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC)

// callLog records face callbacks across every face of a test
type callLog struct {
	calls []string
}

func (l *callLog) add(call string) {
	l.calls = append(l.calls, call)
}

// plainFace implements only the mandatory Face methods
type plainFace struct {
	name      string
	key       uint32
	log       *callLog
	state     entity.ClockState
	lastTick  time.Time
	lastUnits entity.TimeUnits
}

func (f *plainFace) Name() string          { return f.name }
func (f *plainFace) Key() uint32           { return f.key }
func (f *plainFace) State() entity.Record  { return &f.state }
func (f *plainFace) Load()                 { f.log.add(f.name + ".load") }
func (f *plainFace) Unload()               { f.log.add(f.name + ".unload") }
func (f *plainFace) Tick(now time.Time, changed entity.TimeUnits) {
	f.lastTick, f.lastUnits = now, changed
	f.log.add(f.name + ".tick")
}

// richFace implements every optional capability
type richFace struct {
	plainFace
	handled bool
}

func (f *richFace) ClickSelect() bool     { f.log.add(f.name + ".select"); return f.handled }
func (f *richFace) ClickLongSelect() bool { f.log.add(f.name + ".long_select"); return f.handled }
func (f *richFace) ClickUp(uint8) bool    { f.log.add(f.name + ".up"); return f.handled }
func (f *richFace) ClickDown(uint8) bool  { f.log.add(f.name + ".down"); return f.handled }
func (f *richFace) Silence()              { f.log.add(f.name + ".silence") }

// memoryStates keeps encoded records in a map
type memoryStates struct {
	records map[uint32][]byte
	persist []uint32
}

func newMemoryStates() *memoryStates {
	return &memoryStates{records: make(map[uint32][]byte)}
}

func (s *memoryStates) Restore(_ context.Context, key uint32, rec entity.Record) bool {
	data, ok := s.records[key]
	return ok && rec.UnmarshalBinary(data) == nil
}

func (s *memoryStates) Persist(_ context.Context, key uint32, rec entity.Record) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	s.records[key] = data
	s.persist = append(s.persist, key)
	return nil
}

func (s *memoryStates) putSelection(t *testing.T, sel entity.ActiveSelection) {
	data, err := sel.MarshalBinary()
	require.NoError(t, err)
	s.records[entity.SelectionKey] = data
}

type fixture struct {
	log        *callLog
	main       *plainFace
	timer      *richFace
	stopwatch  *richFace
	display    *displaymocks.MockDisplay
	states     *memoryStates
	dispatcher *Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := &callLog{}
	fx := &fixture{
		log:       log,
		main:      &plainFace{name: "MAIN", key: 1, log: log},
		timer:     &richFace{plainFace: plainFace{name: "TMR1", key: 3, log: log}},
		stopwatch: &richFace{plainFace: plainFace{name: "STW", key: 2, log: log}},
		display:   displaymocks.NewMockDisplay(t),
		states:    newMemoryStates(),
	}

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	faces := []usecase.Face{fx.main, fx.timer, fx.stopwatch}
	d, err := New(faces, fx.display, fx.states, mockTime, mockLogger, noop.NewTracerProvider().Tracer("test"))
	require.NoError(t, err)
	fx.dispatcher = d
	return fx
}

func (fx *fixture) start(t *testing.T) {
	t.Helper()
	fx.display.EXPECT().SetInvert(false).Once()
	require.NoError(t, fx.dispatcher.Start(context.Background()))
	fx.log.calls = nil
}

func TestNew(t *testing.T) {
	log := &callLog{}
	tracer := noop.NewTracerProvider().Tracer("test")
	mockDisplay := displaymocks.NewMockDisplay(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	testCases := []struct {
		name     string
		faces    []usecase.Face
		expected error
	}{
		{"No faces", nil, errs.ErrNoFaces},
		{
			"Duplicate keys",
			[]usecase.Face{&plainFace{name: "A", key: 1, log: log}, &plainFace{name: "B", key: 1, log: log}},
			errs.ErrDuplicateFaceKey,
		},
		{
			"Selection key",
			[]usecase.Face{&plainFace{name: "A", key: entity.SelectionKey, log: log}},
			errs.ErrReservedFaceKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := New(tc.faces, mockDisplay, newMemoryStates(), mockTime, mockLogger, tracer)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestStart(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults without a stored selection", func(t *testing.T) {
		fx := newFixture(t)
		fx.display.EXPECT().SetInvert(false).Once()

		require.NoError(t, fx.dispatcher.Start(ctx))

		assert.Equal(t, []string{"MAIN.load"}, fx.log.calls)
		assert.Equal(t, 0, fx.dispatcher.ActiveIndex())
	})

	t.Run("Restores index and inversion", func(t *testing.T) {
		fx := newFixture(t)
		fx.states.putSelection(t, entity.ActiveSelection{ActiveFaceIndex: 2, DisplayInverted: true})
		fx.display.EXPECT().SetInvert(true).Once()

		require.NoError(t, fx.dispatcher.Start(ctx))

		assert.Equal(t, []string{"STW.load"}, fx.log.calls)
		assert.Equal(t, fx.stopwatch, fx.dispatcher.ActiveFace())
	})

	t.Run("Out of range index falls back to the first face", func(t *testing.T) {
		fx := newFixture(t)
		fx.states.putSelection(t, entity.ActiveSelection{ActiveFaceIndex: 9})
		fx.display.EXPECT().SetInvert(false).Once()

		require.NoError(t, fx.dispatcher.Start(ctx))

		assert.Equal(t, []string{"MAIN.load"}, fx.log.calls)
		assert.Equal(t, 0, fx.dispatcher.ActiveIndex())
	})

	t.Run("Second start is rejected", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)

		err := fx.dispatcher.Start(ctx)

		assert.ErrorIs(t, err, errs.ErrDispatcherStarted)
		assert.Empty(t, fx.log.calls)
	})
}

func TestClickDown(t *testing.T) {
	ctx := context.Background()

	t.Run("Face without handler advances", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)

		fx.dispatcher.Click(ctx, entity.ButtonDown, 1)

		assert.Equal(t, []string{"MAIN.unload", "TMR1.load", "TMR1.silence", "STW.silence"}, fx.log.calls)
		assert.Equal(t, 1, fx.dispatcher.ActiveIndex())
	})

	t.Run("Unhandled DOWN advances after the handler", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 1))
		fx.log.calls = nil

		fx.dispatcher.Click(ctx, entity.ButtonDown, 1)

		assert.Equal(t, []string{"TMR1.down", "TMR1.unload", "STW.load", "TMR1.silence", "STW.silence"}, fx.log.calls)
	})

	t.Run("Advancing past the last face wraps", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 2))
		fx.log.calls = nil

		fx.dispatcher.Click(ctx, entity.ButtonDown, 1)

		assert.Equal(t, []string{"STW.down", "STW.unload", "MAIN.load", "TMR1.silence", "STW.silence"}, fx.log.calls)
		assert.Equal(t, 0, fx.dispatcher.ActiveIndex())
	})

	t.Run("Handled DOWN stays", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 1))
		fx.timer.handled = true
		fx.log.calls = nil

		fx.dispatcher.Click(ctx, entity.ButtonDown, 7)

		assert.Equal(t, []string{"TMR1.down", "TMR1.silence", "STW.silence"}, fx.log.calls)
		assert.Equal(t, 1, fx.dispatcher.ActiveIndex())
	})
}

func TestClickSelect(t *testing.T) {
	ctx := context.Background()

	t.Run("Face without handler is refreshed", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)

		fx.dispatcher.Click(ctx, entity.ButtonSelect, 1)

		assert.Equal(t, []string{"MAIN.tick", "TMR1.silence", "STW.silence"}, fx.log.calls)
		assert.Equal(t, fixedTime, fx.main.lastTick)
		assert.Equal(t, entity.ClockUnits, fx.main.lastUnits)
	})

	t.Run("Unhandled SELECT refreshes", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 2))
		fx.log.calls = nil

		fx.dispatcher.Click(ctx, entity.ButtonSelect, 1)

		assert.Equal(t, []string{"STW.select", "STW.tick", "TMR1.silence", "STW.silence"}, fx.log.calls)
	})

	t.Run("Handled SELECT does not refresh", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 2))
		fx.stopwatch.handled = true
		fx.log.calls = nil

		fx.dispatcher.Click(ctx, entity.ButtonSelect, 1)

		assert.Equal(t, []string{"STW.select", "TMR1.silence", "STW.silence"}, fx.log.calls)
	})
}

func TestClickUpAndBack(t *testing.T) {
	ctx := context.Background()

	t.Run("UP has no default", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)

		fx.dispatcher.Click(ctx, entity.ButtonUp, 3)
		assert.Equal(t, []string{"TMR1.silence", "STW.silence"}, fx.log.calls)

		require.NoError(t, fx.dispatcher.Activate(ctx, 1))
		fx.log.calls = nil
		fx.dispatcher.Click(ctx, entity.ButtonUp, 3)
		assert.Equal(t, []string{"TMR1.up", "TMR1.silence", "STW.silence"}, fx.log.calls)
	})

	t.Run("BACK silences and refreshes", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)

		fx.dispatcher.Click(ctx, entity.ButtonBack, 1)

		assert.Equal(t, []string{"TMR1.silence", "STW.silence", "MAIN.tick", "TMR1.silence", "STW.silence"}, fx.log.calls)
	})
}

func TestLongAndMultiClick(t *testing.T) {
	ctx := context.Background()

	t.Run("Long SELECT reaches the handler", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 1))
		fx.log.calls = nil

		fx.dispatcher.LongClick(ctx, entity.ButtonSelect)
		fx.dispatcher.LongClick(ctx, entity.ButtonUp)

		assert.Equal(t, []string{"TMR1.long_select", "TMR1.silence", "STW.silence", "TMR1.silence", "STW.silence"}, fx.log.calls)
	})

	t.Run("Long SELECT without handler is a no-op", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)

		fx.dispatcher.LongClick(ctx, entity.ButtonSelect)

		assert.Equal(t, []string{"TMR1.silence", "STW.silence"}, fx.log.calls)
	})

	t.Run("Double BACK toggles inversion", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		fx.display.EXPECT().Invert().Return(false).Once()
		fx.display.EXPECT().SetInvert(true).Once()

		fx.dispatcher.MultiClick(ctx, entity.ButtonBack, 2)
		fx.dispatcher.MultiClick(ctx, entity.ButtonBack, 3)

		assert.True(t, fx.dispatcher.selection.DisplayInverted)
	})
}

func TestTick(t *testing.T) {
	fx := newFixture(t)
	fx.start(t)
	now := fixedTime.Add(time.Second)

	fx.dispatcher.Tick(now, entity.SecondUnit)

	assert.Equal(t, []string{"MAIN.tick"}, fx.log.calls)
	assert.Equal(t, now, fx.main.lastTick)
	assert.Equal(t, entity.SecondUnit, fx.main.lastUnits)
}

func TestActivate(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	fx.start(t)

	assert.ErrorIs(t, fx.dispatcher.Activate(ctx, 3), errs.ErrInvalidFaceIndex)
	assert.ErrorIs(t, fx.dispatcher.Activate(ctx, -1), errs.ErrInvalidFaceIndex)

	require.NoError(t, fx.dispatcher.Activate(ctx, 0))
	assert.Empty(t, fx.log.calls)

	require.NoError(t, fx.dispatcher.Activate(ctx, 2))
	assert.Equal(t, []string{"MAIN.unload", "STW.load"}, fx.log.calls)
}

func TestStop(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists the selection and every face", func(t *testing.T) {
		fx := newFixture(t)
		fx.start(t)
		require.NoError(t, fx.dispatcher.Activate(ctx, 1))
		fx.display.EXPECT().Invert().Return(false).Once()
		fx.display.EXPECT().SetInvert(true).Once()
		fx.dispatcher.ToggleInvert()
		fx.log.calls = nil

		require.NoError(t, fx.dispatcher.Stop(ctx))
		require.NoError(t, fx.dispatcher.Stop(ctx))

		assert.Equal(t, []string{"TMR1.unload"}, fx.log.calls)
		assert.Equal(t, []uint32{entity.SelectionKey, 1, 3, 2}, fx.states.persist)

		var sel entity.ActiveSelection
		require.NoError(t, sel.UnmarshalBinary(fx.states.records[entity.SelectionKey]))
		assert.Equal(t, entity.ActiveSelection{ActiveFaceIndex: 1, DisplayInverted: true}, sel)
	})

	t.Run("Stop before start does nothing", func(t *testing.T) {
		fx := newFixture(t)

		require.NoError(t, fx.dispatcher.Stop(ctx))

		assert.Empty(t, fx.log.calls)
		assert.Empty(t, fx.states.persist)
	})

	t.Run("Failures are joined and every record is attempted", func(t *testing.T) {
		log := &callLog{}
		mockStore := persistencemocks.NewMockBlobStore(t)
		mockDisplay := displaymocks.NewMockDisplay(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		saveErr := errs.NewPersistenceError("save", 2, errs.ErrStoreUnavailable)
		mockStore.EXPECT().Load(mock.Anything, entity.SelectionKey, entity.SelectionRecordSize).Return(nil, errs.ErrRecordNotFound).Once()
		mockStore.EXPECT().Save(mock.Anything, entity.SelectionKey, mock.Anything).Return(nil).Once()
		mockStore.EXPECT().Save(mock.Anything, uint32(1), mock.Anything).Return(nil).Once()
		mockStore.EXPECT().Save(mock.Anything, uint32(2), mock.Anything).Return(saveErr).Once()
		mockStore.EXPECT().Save(mock.Anything, uint32(3), mock.Anything).Return(nil).Once()
		mockDisplay.EXPECT().SetInvert(false).Once()

		faces := []usecase.Face{
			&plainFace{name: "MAIN", key: 1, log: log},
			&plainFace{name: "STW", key: 2, log: log},
			&plainFace{name: "TMR1", key: 3, log: log},
		}
		repo := state.NewRepository(mockStore, mockLogger)
		d, err := New(faces, mockDisplay, repo, mockTime, mockLogger, noop.NewTracerProvider().Tracer("test"))
		require.NoError(t, err)
		require.NoError(t, d.Start(ctx))

		err = d.Stop(ctx)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStoreUnavailable))
		assert.Equal(t, []string{"MAIN.load", "MAIN.unload"}, log.calls)
	})
}
