package device

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/device"
)

// DefaultPowerSupplyDir is where Linux exposes battery readings
const DefaultPowerSupplyDir = "/sys/class/power_supply"

// StatusConfig seeds a SimulatedStatus
type StatusConfig struct {
	BatteryPercent uint8
	Charging       bool
	Bluetooth      bool
	// PowerSupplyDir is scanned for */capacity; empty disables host readings
	PowerSupplyDir string
}

// SimulatedStatus is a StatusSource backed by the host battery when one is
// readable and by configured values otherwise. Bluetooth is toggled by hand.
type SimulatedStatus struct {
	mu        sync.Mutex
	config    StatusConfig
	battery   device.BatteryState
	bluetooth bool
	handler   device.StatusHandler
	logger    coreport.Logger
}

// NewSimulatedStatus creates a status source and takes a first reading
func NewSimulatedStatus(config StatusConfig, logger coreport.Logger) *SimulatedStatus {
	s := &SimulatedStatus{
		config:    config,
		bluetooth: config.Bluetooth,
		logger:    logger,
	}
	s.battery = s.read()
	return s
}

var _ device.StatusSource = (*SimulatedStatus)(nil)

// Battery implements device.StatusSource
func (s *SimulatedStatus) Battery() device.BatteryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.battery
}

// BluetoothConnected implements device.StatusSource
func (s *SimulatedStatus) BluetoothConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bluetooth
}

// Subscribe implements device.StatusSource
func (s *SimulatedStatus) Subscribe(handler device.StatusHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// Unsubscribe implements device.StatusSource
func (s *SimulatedStatus) Unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = nil
}

// ToggleBluetooth flips the simulated connection and notifies the subscriber.
// It must be called from the event goroutine.
func (s *SimulatedStatus) ToggleBluetooth() {
	s.mu.Lock()
	s.bluetooth = !s.bluetooth
	connected := s.bluetooth
	handler := s.handler
	s.mu.Unlock()

	if handler != nil {
		handler.BluetoothChanged(connected)
	}
}

// Refresh re-reads the battery and notifies the subscriber when it changed.
// It must be called from the event goroutine.
func (s *SimulatedStatus) Refresh() {
	state := s.read()

	s.mu.Lock()
	changed := state != s.battery
	s.battery = state
	handler := s.handler
	s.mu.Unlock()

	if changed && handler != nil {
		handler.BatteryChanged(state)
	}
}

func (s *SimulatedStatus) read() device.BatteryState {
	fallback := device.BatteryState{Percent: clampPercent(int(s.config.BatteryPercent)), Charging: s.config.Charging}
	if s.config.PowerSupplyDir == "" {
		return fallback
	}

	matches, err := filepath.Glob(filepath.Join(s.config.PowerSupplyDir, "*", "capacity"))
	if err != nil || len(matches) == 0 {
		return fallback
	}
	sort.Strings(matches)

	raw, err := os.ReadFile(matches[0])
	if err != nil {
		s.logger.Debug("Battery capacity unreadable", map[string]any{"path": matches[0], "error": err.Error()})
		return fallback
	}
	percent, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		s.logger.Debug("Battery capacity malformed", map[string]any{"path": matches[0], "value": string(raw)})
		return fallback
	}

	state := device.BatteryState{Percent: clampPercent(percent)}
	if status, err := os.ReadFile(filepath.Join(filepath.Dir(matches[0]), "status")); err == nil {
		state.Charging = strings.TrimSpace(string(status)) == "Charging"
	}
	return state
}

func clampPercent(p int) uint8 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return uint8(p)
	}
}
