package display

import (
	time "time"
	
	entity "github.com/amirhossein-jamali/digichron/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockDisplay is a mock type for the Display type
type MockDisplay struct {
	mock.Mock
}

type MockDisplay_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDisplay) EXPECT() *MockDisplay_Expecter {
	return &MockDisplay_Expecter{mock: &_m.Mock}
}

// SetTitle provides a mock function with given fields: title
func (_m *MockDisplay) SetTitle(title string) {
	_m.Called(title)
}

// MockDisplay_SetTitle_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetTitle'
type MockDisplay_SetTitle_Call struct {
	*mock.Call
}

// SetTitle is a helper method to define mock.On call
//   - title string
func (_e *MockDisplay_Expecter) SetTitle(title interface{}) *MockDisplay_SetTitle_Call {
	return &MockDisplay_SetTitle_Call{Call: _e.mock.On("SetTitle", title)}
}

func (_c *MockDisplay_SetTitle_Call) Run(run func(title string)) *MockDisplay_SetTitle_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(string)
		run(arg0)
	})
	return _c
}

func (_c *MockDisplay_SetTitle_Call) Return() *MockDisplay_SetTitle_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetTitle_Call) RunAndReturn(run func(string)) *MockDisplay_SetTitle_Call {
	_c.Run(run)
	return _c
}

// SetTime provides a mock function with given fields: t, units, style
func (_m *MockDisplay) SetTime(t time.Time, units entity.TimeUnits, style entity.TimeStyle) {
	_m.Called(t, units, style)
}

// MockDisplay_SetTime_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetTime'
type MockDisplay_SetTime_Call struct {
	*mock.Call
}

// SetTime is a helper method to define mock.On call
//   - t time.Time
//   - units entity.TimeUnits
//   - style entity.TimeStyle
func (_e *MockDisplay_Expecter) SetTime(t interface{}, units interface{}, style interface{}) *MockDisplay_SetTime_Call {
	return &MockDisplay_SetTime_Call{Call: _e.mock.On("SetTime", t, units, style)}
}

func (_c *MockDisplay_SetTime_Call) Run(run func(t time.Time, units entity.TimeUnits, style entity.TimeStyle)) *MockDisplay_SetTime_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(time.Time)
		arg1 := args[1].(entity.TimeUnits)
		arg2 := args[2].(entity.TimeStyle)
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockDisplay_SetTime_Call) Return() *MockDisplay_SetTime_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetTime_Call) RunAndReturn(run func(time.Time, entity.TimeUnits, entity.TimeStyle)) *MockDisplay_SetTime_Call {
	_c.Run(run)
	return _c
}

// SetInterval provides a mock function with given fields: seconds, milliseconds
func (_m *MockDisplay) SetInterval(seconds int64, milliseconds uint16) {
	_m.Called(seconds, milliseconds)
}

// MockDisplay_SetInterval_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetInterval'
type MockDisplay_SetInterval_Call struct {
	*mock.Call
}

// SetInterval is a helper method to define mock.On call
//   - seconds int64
//   - milliseconds uint16
func (_e *MockDisplay_Expecter) SetInterval(seconds interface{}, milliseconds interface{}) *MockDisplay_SetInterval_Call {
	return &MockDisplay_SetInterval_Call{Call: _e.mock.On("SetInterval", seconds, milliseconds)}
}

func (_c *MockDisplay_SetInterval_Call) Run(run func(seconds int64, milliseconds uint16)) *MockDisplay_SetInterval_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(int64)
		arg1 := args[1].(uint16)
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockDisplay_SetInterval_Call) Return() *MockDisplay_SetInterval_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetInterval_Call) RunAndReturn(run func(int64, uint16)) *MockDisplay_SetInterval_Call {
	_c.Run(run)
	return _c
}

// SetHighlight provides a mock function with given fields: field
func (_m *MockDisplay) SetHighlight(field entity.HighlightField) {
	_m.Called(field)
}

// MockDisplay_SetHighlight_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetHighlight'
type MockDisplay_SetHighlight_Call struct {
	*mock.Call
}

// SetHighlight is a helper method to define mock.On call
//   - field entity.HighlightField
func (_e *MockDisplay_Expecter) SetHighlight(field interface{}) *MockDisplay_SetHighlight_Call {
	return &MockDisplay_SetHighlight_Call{Call: _e.mock.On("SetHighlight", field)}
}

func (_c *MockDisplay_SetHighlight_Call) Run(run func(field entity.HighlightField)) *MockDisplay_SetHighlight_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(entity.HighlightField)
		run(arg0)
	})
	return _c
}

func (_c *MockDisplay_SetHighlight_Call) Return() *MockDisplay_SetHighlight_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetHighlight_Call) RunAndReturn(run func(entity.HighlightField)) *MockDisplay_SetHighlight_Call {
	_c.Run(run)
	return _c
}

// Clear provides a mock function with given fields: 
func (_m *MockDisplay) Clear() {
	_m.Called()
}

// MockDisplay_Clear_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Clear'
type MockDisplay_Clear_Call struct {
	*mock.Call
}

// Clear is a helper method to define mock.On call
func (_e *MockDisplay_Expecter) Clear() *MockDisplay_Clear_Call {
	return &MockDisplay_Clear_Call{Call: _e.mock.On("Clear")}
}

func (_c *MockDisplay_Clear_Call) Run(run func()) *MockDisplay_Clear_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockDisplay_Clear_Call) Return() *MockDisplay_Clear_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_Clear_Call) RunAndReturn(run func()) *MockDisplay_Clear_Call {
	_c.Run(run)
	return _c
}

// SetInvert provides a mock function with given fields: inverted
func (_m *MockDisplay) SetInvert(inverted bool) {
	_m.Called(inverted)
}

// MockDisplay_SetInvert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetInvert'
type MockDisplay_SetInvert_Call struct {
	*mock.Call
}

// SetInvert is a helper method to define mock.On call
//   - inverted bool
func (_e *MockDisplay_Expecter) SetInvert(inverted interface{}) *MockDisplay_SetInvert_Call {
	return &MockDisplay_SetInvert_Call{Call: _e.mock.On("SetInvert", inverted)}
}

func (_c *MockDisplay_SetInvert_Call) Run(run func(inverted bool)) *MockDisplay_SetInvert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(bool)
		run(arg0)
	})
	return _c
}

func (_c *MockDisplay_SetInvert_Call) Return() *MockDisplay_SetInvert_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetInvert_Call) RunAndReturn(run func(bool)) *MockDisplay_SetInvert_Call {
	_c.Run(run)
	return _c
}

// Invert provides a mock function with given fields: 
func (_m *MockDisplay) Invert() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Invert")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockDisplay_Invert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Invert'
type MockDisplay_Invert_Call struct {
	*mock.Call
}

// Invert is a helper method to define mock.On call
func (_e *MockDisplay_Expecter) Invert() *MockDisplay_Invert_Call {
	return &MockDisplay_Invert_Call{Call: _e.mock.On("Invert")}
}

func (_c *MockDisplay_Invert_Call) Run(run func()) *MockDisplay_Invert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockDisplay_Invert_Call) Return(_a0 bool) *MockDisplay_Invert_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDisplay_Invert_Call) RunAndReturn(run func() bool) *MockDisplay_Invert_Call {
	_c.Call.Return(run)
	return _c
}

// SetBattery provides a mock function with given fields: percent, charging
func (_m *MockDisplay) SetBattery(percent uint8, charging bool) {
	_m.Called(percent, charging)
}

// MockDisplay_SetBattery_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetBattery'
type MockDisplay_SetBattery_Call struct {
	*mock.Call
}

// SetBattery is a helper method to define mock.On call
//   - percent uint8
//   - charging bool
func (_e *MockDisplay_Expecter) SetBattery(percent interface{}, charging interface{}) *MockDisplay_SetBattery_Call {
	return &MockDisplay_SetBattery_Call{Call: _e.mock.On("SetBattery", percent, charging)}
}

func (_c *MockDisplay_SetBattery_Call) Run(run func(percent uint8, charging bool)) *MockDisplay_SetBattery_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(uint8)
		arg1 := args[1].(bool)
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockDisplay_SetBattery_Call) Return() *MockDisplay_SetBattery_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetBattery_Call) RunAndReturn(run func(uint8, bool)) *MockDisplay_SetBattery_Call {
	_c.Run(run)
	return _c
}

// SetBluetooth provides a mock function with given fields: connected
func (_m *MockDisplay) SetBluetooth(connected bool) {
	_m.Called(connected)
}

// MockDisplay_SetBluetooth_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetBluetooth'
type MockDisplay_SetBluetooth_Call struct {
	*mock.Call
}

// SetBluetooth is a helper method to define mock.On call
//   - connected bool
func (_e *MockDisplay_Expecter) SetBluetooth(connected interface{}) *MockDisplay_SetBluetooth_Call {
	return &MockDisplay_SetBluetooth_Call{Call: _e.mock.On("SetBluetooth", connected)}
}

func (_c *MockDisplay_SetBluetooth_Call) Run(run func(connected bool)) *MockDisplay_SetBluetooth_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(bool)
		run(arg0)
	})
	return _c
}

func (_c *MockDisplay_SetBluetooth_Call) Return() *MockDisplay_SetBluetooth_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockDisplay_SetBluetooth_Call) RunAndReturn(run func(bool)) *MockDisplay_SetBluetooth_Call {
	_c.Run(run)
	return _c
}

// NewMockDisplay creates a new instance of MockDisplay. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDisplay(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDisplay {
	mock := &MockDisplay{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
