package device

import (
	"io"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/device"
)

const (
	bell          = "\a"
	pulseDuration = 300 * time.Millisecond
)

// TerminalVibrator stands in for the vibe motor: it rings the terminal bell
// and keeps a flash window the renderer can show
type TerminalVibrator struct {
	mu           sync.Mutex
	out          io.Writer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	flashUntil   time.Time
	pulses       int
}

// NewTerminalVibrator creates a vibrator writing bells to out. A nil out only flashes.
func NewTerminalVibrator(out io.Writer, timeProvider coreport.TimeProvider, logger coreport.Logger) *TerminalVibrator {
	return &TerminalVibrator{
		out:          out,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ device.Vibrator = (*TerminalVibrator)(nil)

// ShortPulse implements device.Vibrator
func (v *TerminalVibrator) ShortPulse() {
	v.pulse(1)
}

// DoublePulse implements device.Vibrator
func (v *TerminalVibrator) DoublePulse() {
	v.pulse(2)
}

func (v *TerminalVibrator) pulse(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pulses += n
	v.flashUntil = v.timeProvider.Now().Add(time.Duration(n) * pulseDuration)

	if v.out == nil {
		return
	}
	for i := 0; i < n; i++ {
		if _, err := io.WriteString(v.out, bell); err != nil {
			v.logger.Warn("Failed to ring terminal bell", map[string]any{"error": err.Error()})
			return
		}
	}
}

// Flashing reports whether a pulse is still being shown
func (v *TerminalVibrator) Flashing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timeProvider.Now().Before(v.flashUntil)
}

// Pulses returns how many pulses have been emitted
func (v *TerminalVibrator) Pulses() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pulses
}
