package device

// Vibrator drives the vibe motor
type Vibrator interface {
	ShortPulse()
	DoublePulse()
}

// BatteryState is the last battery reading
type BatteryState struct {
	Percent  uint8
	Charging bool
}

// StatusHandler receives status changes. Calls arrive on the event goroutine.
type StatusHandler interface {
	BatteryChanged(state BatteryState)
	BluetoothChanged(connected bool)
}

// StatusSource reports battery and Bluetooth connectivity
type StatusSource interface {
	Battery() BatteryState
	BluetoothConnected() bool
	// Subscribe replaces any previous handler
	Subscribe(handler StatusHandler)
	Unsubscribe()
}
