package device

import (

	mock "github.com/stretchr/testify/mock"
)

// MockVibrator is a mock type for the Vibrator type
type MockVibrator struct {
	mock.Mock
}

type MockVibrator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockVibrator) EXPECT() *MockVibrator_Expecter {
	return &MockVibrator_Expecter{mock: &_m.Mock}
}

// ShortPulse provides a mock function with given fields: 
func (_m *MockVibrator) ShortPulse() {
	_m.Called()
}

// MockVibrator_ShortPulse_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ShortPulse'
type MockVibrator_ShortPulse_Call struct {
	*mock.Call
}

// ShortPulse is a helper method to define mock.On call
func (_e *MockVibrator_Expecter) ShortPulse() *MockVibrator_ShortPulse_Call {
	return &MockVibrator_ShortPulse_Call{Call: _e.mock.On("ShortPulse")}
}

func (_c *MockVibrator_ShortPulse_Call) Run(run func()) *MockVibrator_ShortPulse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockVibrator_ShortPulse_Call) Return() *MockVibrator_ShortPulse_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockVibrator_ShortPulse_Call) RunAndReturn(run func()) *MockVibrator_ShortPulse_Call {
	_c.Run(run)
	return _c
}

// DoublePulse provides a mock function with given fields: 
func (_m *MockVibrator) DoublePulse() {
	_m.Called()
}

// MockVibrator_DoublePulse_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DoublePulse'
type MockVibrator_DoublePulse_Call struct {
	*mock.Call
}

// DoublePulse is a helper method to define mock.On call
func (_e *MockVibrator_Expecter) DoublePulse() *MockVibrator_DoublePulse_Call {
	return &MockVibrator_DoublePulse_Call{Call: _e.mock.On("DoublePulse")}
}

func (_c *MockVibrator_DoublePulse_Call) Run(run func()) *MockVibrator_DoublePulse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockVibrator_DoublePulse_Call) Return() *MockVibrator_DoublePulse_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockVibrator_DoublePulse_Call) RunAndReturn(run func()) *MockVibrator_DoublePulse_Call {
	_c.Run(run)
	return _c
}

// NewMockVibrator creates a new instance of MockVibrator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockVibrator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVibrator {
	mock := &MockVibrator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
