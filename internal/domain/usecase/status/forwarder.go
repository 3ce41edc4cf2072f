package status

import (
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/device"
	"github.com/amirhossein-jamali/digichron/internal/domain/port/display"
)

// Forwarder copies battery and Bluetooth state from a StatusSource to the
// display. Losing Bluetooth buzzes the wearer.
type Forwarder struct {
	source   device.StatusSource
	display  display.Display
	vibrator device.Vibrator
	logger   coreport.Logger
}

// NewForwarder creates a new Forwarder
func NewForwarder(
	source device.StatusSource,
	display display.Display,
	vibrator device.Vibrator,
	logger coreport.Logger,
) *Forwarder {
	return &Forwarder{
		source:   source,
		display:  display,
		vibrator: vibrator,
		logger:   logger,
	}
}

// Start shows the current status and subscribes to changes
func (f *Forwarder) Start() {
	battery := f.source.Battery()
	f.display.SetBattery(battery.Percent, battery.Charging)

	connected := f.source.BluetoothConnected()
	f.display.SetBluetooth(connected)
	if !connected {
		f.vibrator.DoublePulse()
	}

	f.source.Subscribe(f)

	f.logger.Info("Status forwarding started", map[string]any{
		"battery":   battery.Percent,
		"charging":  battery.Charging,
		"bluetooth": connected,
	})
}

// Stop unsubscribes from the source
func (f *Forwarder) Stop() {
	f.source.Unsubscribe()
}

// BatteryChanged implements device.StatusHandler
func (f *Forwarder) BatteryChanged(state device.BatteryState) {
	f.display.SetBattery(state.Percent, state.Charging)
}

// BluetoothChanged implements device.StatusHandler
func (f *Forwarder) BluetoothChanged(connected bool) {
	f.display.SetBluetooth(connected)
	f.vibrator.DoublePulse()
	f.logger.Info("Bluetooth connection changed", map[string]any{
		"connected": connected,
	})
}
