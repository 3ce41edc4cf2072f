package device

import (
	"bytes"
	"testing"
	"time"

	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
)

func TestTerminalVibrator(t *testing.T) {
	clock := timeadapter.NewManualClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	var out bytes.Buffer
	vibrator := NewTerminalVibrator(&out, clock, logger.NewNoopLogger())

	assert.False(t, vibrator.Flashing())

	vibrator.ShortPulse()
	assert.Equal(t, "\a", out.String())
	assert.True(t, vibrator.Flashing())

	clock.Advance(pulseDuration)
	assert.False(t, vibrator.Flashing())

	vibrator.DoublePulse()
	assert.Equal(t, "\a\a\a", out.String())
	clock.Advance(pulseDuration)
	assert.True(t, vibrator.Flashing())
	clock.Advance(pulseDuration)
	assert.False(t, vibrator.Flashing())

	assert.Equal(t, 3, vibrator.Pulses())
}

func TestTerminalVibratorWithoutOutput(t *testing.T) {
	clock := timeadapter.NewManualClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	vibrator := NewTerminalVibrator(nil, clock, logger.NewNoopLogger())

	vibrator.DoublePulse()
	assert.True(t, vibrator.Flashing())
	assert.Equal(t, 2, vibrator.Pulses())
}
