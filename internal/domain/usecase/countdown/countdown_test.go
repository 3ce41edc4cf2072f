package countdown

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	displayadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/display"
	timeadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/digichron/mocks/port/core"
	devicemocks "github.com/amirhossein-jamali/digichron/mocks/port/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var startTime = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	face     *Face
	clock    *timeadapter.ManualClock
	panel    *displayadapter.Panel
	vibrator *devicemocks.MockVibrator
}

func newFixture(t *testing.T, configured int32) *fixture {
	t.Helper()

	clock := timeadapter.NewManualClock(startTime)
	panel := displayadapter.NewPanel(false)
	vibrator := devicemocks.NewMockVibrator(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	info, err := entity.NewFaceInfo("TMR1", 3)
	require.NoError(t, err)

	face := New(info, panel, vibrator, clock, clock, mockLogger)
	face.state.ConfiguredDuration = configured
	return &fixture{face: face, clock: clock, panel: panel, vibrator: vibrator}
}

func (fx *fixture) shown() string {
	snap := fx.panel.Snapshot()
	return snap.Hour + ":" + snap.Minute + ":" + snap.Second
}

func TestLoadIdle(t *testing.T) {
	fx := newFixture(t, 90)

	fx.face.Load()

	assert.Equal(t, "00:01:30", fx.shown())
	assert.Equal(t, "", fx.panel.Snapshot().AmPm)
	assert.Equal(t, "TMR1", fx.panel.Snapshot().Date)
	assert.Equal(t, 0, fx.clock.Pending())
}

func TestCountdownToAlertAndBack(t *testing.T) {
	fx := newFixture(t, 90)
	fx.vibrator.EXPECT().ShortPulse().Times(3)
	fx.face.Load()

	require.True(t, fx.face.ClickSelect())
	assert.Equal(t, entity.CountdownRunning, fx.face.state.Mode)
	assert.Equal(t, startTime.Unix()+90, fx.face.state.EndAt)

	fx.clock.Advance(30 * time.Second)
	assert.Equal(t, "00:01:00", fx.shown())

	fx.clock.Advance(60 * time.Second)
	assert.Equal(t, entity.CountdownAlerting, fx.face.state.Mode)
	assert.Equal(t, "00:00:00", fx.shown())
	assert.Equal(t, entity.HighlightDate, fx.panel.Snapshot().Highlight)

	// The alert repeats every second until silenced
	fx.clock.Advance(2 * time.Second)
	assert.Equal(t, 1, fx.clock.Pending())

	fx.face.Silence()
	assert.Equal(t, entity.CountdownClearedPendingRedraw, fx.face.state.Mode)
	assert.Equal(t, entity.HighlightNone, fx.panel.Snapshot().Highlight)
	assert.Equal(t, 0, fx.clock.Pending())

	fx.face.Tick(fx.clock.Now(), entity.SecondUnit)
	assert.Equal(t, entity.CountdownIdle, fx.face.state.Mode)
	assert.Equal(t, "00:01:30", fx.shown())
	assert.Equal(t, int32(90), fx.face.state.ConfiguredDuration)
}

func TestTickExpires(t *testing.T) {
	fx := newFixture(t, 5)
	fx.vibrator.EXPECT().ShortPulse().Once()
	fx.face.Load()
	fx.face.ClickSelect()

	// Tick lands before the task
	fx.clock.Advance(4 * time.Second)
	fx.face.state.EndAt = fx.clock.Now().Unix()
	fx.face.Tick(fx.clock.Now(), entity.SecondUnit)

	assert.Equal(t, entity.CountdownAlerting, fx.face.state.Mode)
	assert.Equal(t, int32(0), fx.face.state.RemainingAtPause)
}

func TestSilenceOutsideAlertIsIgnored(t *testing.T) {
	fx := newFixture(t, 60)
	fx.face.Load()
	fx.face.ClickSelect()

	fx.face.Silence()

	assert.Equal(t, entity.CountdownRunning, fx.face.state.Mode)
	assert.Equal(t, 1, fx.clock.Pending())
}

func TestPauseResume(t *testing.T) {
	fx := newFixture(t, 90)
	fx.face.Load()
	fx.face.ClickSelect()

	fx.clock.Advance(30 * time.Second)
	fx.face.ClickSelect()

	assert.Equal(t, entity.CountdownStopped, fx.face.state.Mode)
	assert.Equal(t, int32(60), fx.face.state.RemainingAtPause)
	assert.Equal(t, 0, fx.clock.Pending())

	fx.clock.Advance(100 * time.Second)
	assert.Equal(t, "00:01:00", fx.shown())

	fx.face.ClickSelect()
	assert.Equal(t, entity.CountdownRunning, fx.face.state.Mode)
	assert.Equal(t, fx.clock.Now().Unix()+60, fx.face.state.EndAt)
	assert.Equal(t, fx.clock.Now().Unix(), fx.face.state.StartedAt)
	assert.Equal(t, 1, fx.clock.Pending())
}

func TestUpCancelsToIdle(t *testing.T) {
	for _, pause := range []bool{false, true} {
		fx := newFixture(t, 90)
		fx.face.Load()
		fx.face.ClickSelect()
		fx.clock.Advance(10 * time.Second)
		if pause {
			fx.face.ClickSelect()
		}

		require.True(t, fx.face.ClickUp(1))

		assert.Equal(t, entity.CountdownIdle, fx.face.state.Mode)
		assert.Equal(t, "00:01:30", fx.shown())
		assert.Equal(t, int32(90), fx.face.state.ConfiguredDuration)
		assert.Equal(t, 0, fx.clock.Pending())
	}
}

func TestUpDownOutsideEditing(t *testing.T) {
	fx := newFixture(t, 90)
	fx.face.Load()

	assert.False(t, fx.face.ClickUp(1))
	assert.False(t, fx.face.ClickDown(1))

	fx.face.ClickSelect()
	assert.False(t, fx.face.ClickDown(1))
}

func TestEditCycle(t *testing.T) {
	fx := newFixture(t, 0)
	fx.face.Load()

	require.True(t, fx.face.ClickLongSelect())
	assert.Equal(t, entity.CountdownSetMinutes, fx.face.state.Mode)
	assert.Equal(t, entity.HighlightMinutes, fx.panel.Snapshot().Highlight)

	steps := []struct {
		mode      entity.CountdownMode
		highlight entity.HighlightField
	}{
		{entity.CountdownSetHours, entity.HighlightHours},
		{entity.CountdownSetSeconds, entity.HighlightSeconds},
		{entity.CountdownSetMinutes, entity.HighlightMinutes},
	}
	for _, step := range steps {
		require.True(t, fx.face.ClickSelect())
		assert.Equal(t, step.mode, fx.face.state.Mode)
		assert.Equal(t, step.highlight, fx.panel.Snapshot().Highlight)
	}

	require.True(t, fx.face.ClickLongSelect())
	assert.Equal(t, entity.CountdownIdle, fx.face.state.Mode)
	assert.Equal(t, entity.HighlightNone, fx.panel.Snapshot().Highlight)
}

func TestAdjustDuration(t *testing.T) {
	testCases := []struct {
		name     string
		mode     entity.CountdownMode
		start    int32
		up       bool
		count    uint8
		expected int32
	}{
		{"Single minute", entity.CountdownSetMinutes, 0, true, 1, 60},
		{"Repeat 5 still steps by one", entity.CountdownSetMinutes, 0, true, 5, 60},
		{"Repeat 7 steps by five", entity.CountdownSetMinutes, 0, true, 7, 300},
		{"Repeat 12 steps by ten", entity.CountdownSetMinutes, 0, true, 12, 600},
		{"Hours", entity.CountdownSetHours, 0, true, 1, 3600},
		{"Seconds", entity.CountdownSetSeconds, 0, true, 11, 10},
		{"Step shrinks under the ceiling", entity.CountdownSetMinutes, entity.MaxCountdownSeconds - 100, true, 12, entity.MaxCountdownSeconds - 40},
		{"Ceiling holds", entity.CountdownSetHours, entity.MaxCountdownSeconds, true, 1, entity.MaxCountdownSeconds},
		{"Down by one", entity.CountdownSetSeconds, 10, false, 1, 9},
		{"Down shrinks at the floor", entity.CountdownSetSeconds, 3, false, 7, 0},
		{"Down below floor is ignored", entity.CountdownSetHours, 1800, false, 1, 1800},
		{"Down minutes by five", entity.CountdownSetMinutes, 600, false, 8, 300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newFixture(t, tc.start)
			fx.face.state.Mode = tc.mode
			fx.face.Load()

			var handled bool
			if tc.up {
				handled = fx.face.ClickUp(tc.count)
			} else {
				handled = fx.face.ClickDown(tc.count)
			}

			assert.True(t, handled)
			assert.Equal(t, tc.expected, fx.face.state.ConfiguredDuration)
			assert.LessOrEqual(t, fx.face.state.ConfiguredDuration, int32(entity.MaxCountdownSeconds))
			assert.GreaterOrEqual(t, fx.face.state.ConfiguredDuration, int32(0))
		})
	}
}

func TestAdjustRedrawsField(t *testing.T) {
	fx := newFixture(t, 0)
	fx.face.Load()
	fx.face.ClickLongSelect()

	fx.face.ClickUp(7)

	assert.Equal(t, "00:05:00", fx.shown())
}

func TestHiddenExpiry(t *testing.T) {
	fx := newFixture(t, 10)
	fx.vibrator.EXPECT().ShortPulse().Twice()
	fx.face.Load()
	fx.face.ClickSelect()

	fx.face.Unload()
	assert.Equal(t, 1, fx.clock.Pending())
	assert.Equal(t, displayadapter.Snapshot{}, fx.panel.Snapshot())

	fx.clock.Advance(11 * time.Second)
	assert.Equal(t, entity.CountdownAlerting, fx.face.state.Mode)
	assert.Equal(t, displayadapter.Snapshot{}, fx.panel.Snapshot())

	fx.face.Load()
	assert.Equal(t, "00:00:00", fx.shown())
	assert.Equal(t, entity.HighlightDate, fx.panel.Snapshot().Highlight)
	assert.Equal(t, 1, fx.clock.Pending())
}

func TestSilenceWhileHidden(t *testing.T) {
	fx := newFixture(t, 1)
	fx.vibrator.EXPECT().ShortPulse().Once()
	fx.face.Load()
	fx.face.ClickSelect()
	fx.face.Unload()

	fx.clock.Advance(time.Second)
	require.Equal(t, entity.CountdownAlerting, fx.face.state.Mode)

	fx.face.Silence()
	assert.Equal(t, displayadapter.Snapshot{}, fx.panel.Snapshot())
	assert.Equal(t, 0, fx.clock.Pending())

	fx.face.Load()
	assert.Equal(t, entity.CountdownIdle, fx.face.state.Mode)
	assert.Equal(t, "00:00:01", fx.shown())
}

func TestLoadReplacesStaleTask(t *testing.T) {
	fx := newFixture(t, 600)
	fx.face.Load()
	fx.face.ClickSelect()
	fx.face.Unload()
	fx.clock.Advance(90 * time.Second)

	fx.face.Load()

	assert.Equal(t, 1, fx.clock.Pending())
	assert.Equal(t, "00:08:30", fx.shown())
}

func TestRestoredRunningAlreadyExpired(t *testing.T) {
	fx := newFixture(t, 60)
	fx.vibrator.EXPECT().ShortPulse().Once()
	fx.face.state.Mode = entity.CountdownRunning
	fx.face.state.StartedAt = startTime.Unix() - 120
	fx.face.state.EndAt = startTime.Unix() - 60

	fx.face.Load()

	assert.Equal(t, entity.CountdownAlerting, fx.face.state.Mode)
	assert.Equal(t, "00:00:00", fx.shown())
	assert.Equal(t, 1, fx.clock.Pending())
}

func TestUnloadCancelsIdleTask(t *testing.T) {
	fx := newFixture(t, 60)
	fx.face.Load()
	fx.face.ClickSelect()
	fx.face.ClickSelect()

	fx.face.Unload()

	assert.Equal(t, 0, fx.clock.Pending())
}

func TestRunningArmsOneSecondChecks(t *testing.T) {
	clock := timeadapter.NewManualClock(startTime)
	mockScheduler := coremocks.NewMockScheduler(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	mockScheduler.EXPECT().Schedule(coreport.Second, mock.Anything).RunAndReturn(clock.Schedule).Times(2)

	info, err := entity.NewFaceInfo("TMR2", 4)
	require.NoError(t, err)
	face := New(info, displayadapter.NewPanel(false), devicemocks.NewMockVibrator(t), clock, mockScheduler, mockLogger)
	face.state.ConfiguredDuration = 60
	face.Load()

	require.True(t, face.ClickSelect())
	assert.Equal(t, 1, clock.Pending())

	require.True(t, face.ClickSelect())
	assert.Equal(t, entity.CountdownStopped, face.state.Mode)
	assert.Equal(t, 0, clock.Pending())

	require.True(t, face.ClickSelect())
	assert.Equal(t, 1, clock.Pending())
}
