package core

import (
	core "github.com/amirhossein-jamali/digichron/internal/domain/port/core"

	mock "github.com/stretchr/testify/mock"
)

// MockScheduler is a mock type for the Scheduler type
type MockScheduler struct {
	mock.Mock
}

type MockScheduler_Expecter struct {
	mock *mock.Mock
}

func (_m *MockScheduler) EXPECT() *MockScheduler_Expecter {
	return &MockScheduler_Expecter{mock: &_m.Mock}
}

// Schedule provides a mock function with given fields: after, fn
func (_m *MockScheduler) Schedule(after core.Duration, fn func()) core.Task {
	ret := _m.Called(after, fn)

	if len(ret) == 0 {
		panic("no return value specified for Schedule")
	}

	var r0 core.Task
	if rf, ok := ret.Get(0).(func(core.Duration, func()) core.Task); ok {
		r0 = rf(after, fn)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(core.Task)
		}
	}

	return r0
}

// MockScheduler_Schedule_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Schedule'
type MockScheduler_Schedule_Call struct {
	*mock.Call
}

// Schedule is a helper method to define mock.On call
//   - after core.Duration
//   - fn func()
func (_e *MockScheduler_Expecter) Schedule(after interface{}, fn interface{}) *MockScheduler_Schedule_Call {
	return &MockScheduler_Schedule_Call{Call: _e.mock.On("Schedule", after, fn)}
}

func (_c *MockScheduler_Schedule_Call) Run(run func(after core.Duration, fn func())) *MockScheduler_Schedule_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(core.Duration)
		var arg1 func()
		if args[1] != nil {
			arg1 = args[1].(func())
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockScheduler_Schedule_Call) Return(_a0 core.Task) *MockScheduler_Schedule_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockScheduler_Schedule_Call) RunAndReturn(run func(core.Duration, func()) core.Task) *MockScheduler_Schedule_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockScheduler creates a new instance of MockScheduler. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockScheduler(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockScheduler {
	mock := &MockScheduler{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
