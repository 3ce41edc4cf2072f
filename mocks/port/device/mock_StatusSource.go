package device

import (
	device "github.com/amirhossein-jamali/digichron/internal/domain/port/device"

	mock "github.com/stretchr/testify/mock"
)

// MockStatusSource is a mock type for the StatusSource type
type MockStatusSource struct {
	mock.Mock
}

type MockStatusSource_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStatusSource) EXPECT() *MockStatusSource_Expecter {
	return &MockStatusSource_Expecter{mock: &_m.Mock}
}

// Battery provides a mock function with given fields: 
func (_m *MockStatusSource) Battery() device.BatteryState {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Battery")
	}

	var r0 device.BatteryState
	if rf, ok := ret.Get(0).(func() device.BatteryState); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(device.BatteryState)
	}

	return r0
}

// MockStatusSource_Battery_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Battery'
type MockStatusSource_Battery_Call struct {
	*mock.Call
}

// Battery is a helper method to define mock.On call
func (_e *MockStatusSource_Expecter) Battery() *MockStatusSource_Battery_Call {
	return &MockStatusSource_Battery_Call{Call: _e.mock.On("Battery")}
}

func (_c *MockStatusSource_Battery_Call) Run(run func()) *MockStatusSource_Battery_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockStatusSource_Battery_Call) Return(_a0 device.BatteryState) *MockStatusSource_Battery_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStatusSource_Battery_Call) RunAndReturn(run func() device.BatteryState) *MockStatusSource_Battery_Call {
	_c.Call.Return(run)
	return _c
}

// BluetoothConnected provides a mock function with given fields: 
func (_m *MockStatusSource) BluetoothConnected() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for BluetoothConnected")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockStatusSource_BluetoothConnected_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BluetoothConnected'
type MockStatusSource_BluetoothConnected_Call struct {
	*mock.Call
}

// BluetoothConnected is a helper method to define mock.On call
func (_e *MockStatusSource_Expecter) BluetoothConnected() *MockStatusSource_BluetoothConnected_Call {
	return &MockStatusSource_BluetoothConnected_Call{Call: _e.mock.On("BluetoothConnected")}
}

func (_c *MockStatusSource_BluetoothConnected_Call) Run(run func()) *MockStatusSource_BluetoothConnected_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockStatusSource_BluetoothConnected_Call) Return(_a0 bool) *MockStatusSource_BluetoothConnected_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStatusSource_BluetoothConnected_Call) RunAndReturn(run func() bool) *MockStatusSource_BluetoothConnected_Call {
	_c.Call.Return(run)
	return _c
}

// Subscribe provides a mock function with given fields: handler
func (_m *MockStatusSource) Subscribe(handler device.StatusHandler) {
	_m.Called(handler)
}

// MockStatusSource_Subscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Subscribe'
type MockStatusSource_Subscribe_Call struct {
	*mock.Call
}

// Subscribe is a helper method to define mock.On call
//   - handler device.StatusHandler
func (_e *MockStatusSource_Expecter) Subscribe(handler interface{}) *MockStatusSource_Subscribe_Call {
	return &MockStatusSource_Subscribe_Call{Call: _e.mock.On("Subscribe", handler)}
}

func (_c *MockStatusSource_Subscribe_Call) Run(run func(handler device.StatusHandler)) *MockStatusSource_Subscribe_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 device.StatusHandler
		if args[0] != nil {
			arg0 = args[0].(device.StatusHandler)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockStatusSource_Subscribe_Call) Return() *MockStatusSource_Subscribe_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockStatusSource_Subscribe_Call) RunAndReturn(run func(device.StatusHandler)) *MockStatusSource_Subscribe_Call {
	_c.Run(run)
	return _c
}

// Unsubscribe provides a mock function with given fields: 
func (_m *MockStatusSource) Unsubscribe() {
	_m.Called()
}

// MockStatusSource_Unsubscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Unsubscribe'
type MockStatusSource_Unsubscribe_Call struct {
	*mock.Call
}

// Unsubscribe is a helper method to define mock.On call
func (_e *MockStatusSource_Expecter) Unsubscribe() *MockStatusSource_Unsubscribe_Call {
	return &MockStatusSource_Unsubscribe_Call{Call: _e.mock.On("Unsubscribe")}
}

func (_c *MockStatusSource_Unsubscribe_Call) Run(run func()) *MockStatusSource_Unsubscribe_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockStatusSource_Unsubscribe_Call) Return() *MockStatusSource_Unsubscribe_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockStatusSource_Unsubscribe_Call) RunAndReturn(run func()) *MockStatusSource_Unsubscribe_Call {
	_c.Run(run)
	return _c
}

// NewMockStatusSource creates a new instance of MockStatusSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStatusSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatusSource {
	mock := &MockStatusSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
