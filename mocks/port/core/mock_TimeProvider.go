package core

import (
	context "context"
	time "time"
	
	core "github.com/amirhossein-jamali/digichron/internal/domain/port/core"

	mock "github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock type for the TimeProvider type
type MockTimeProvider struct {
	mock.Mock
}

type MockTimeProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTimeProvider) EXPECT() *MockTimeProvider_Expecter {
	return &MockTimeProvider_Expecter{mock: &_m.Mock}
}

// Now provides a mock function with given fields: 
func (_m *MockTimeProvider) Now() time.Time {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Now")
	}

	var r0 time.Time
	if rf, ok := ret.Get(0).(func() time.Time); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Time)
	}

	return r0
}

// MockTimeProvider_Now_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Now'
type MockTimeProvider_Now_Call struct {
	*mock.Call
}

// Now is a helper method to define mock.On call
func (_e *MockTimeProvider_Expecter) Now() *MockTimeProvider_Now_Call {
	return &MockTimeProvider_Now_Call{Call: _e.mock.On("Now")}
}

func (_c *MockTimeProvider_Now_Call) Run(run func()) *MockTimeProvider_Now_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTimeProvider_Now_Call) Return(_a0 time.Time) *MockTimeProvider_Now_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTimeProvider_Now_Call) RunAndReturn(run func() time.Time) *MockTimeProvider_Now_Call {
	_c.Call.Return(run)
	return _c
}

// Since provides a mock function with given fields: t
func (_m *MockTimeProvider) Since(t time.Time) core.Duration {
	ret := _m.Called(t)

	if len(ret) == 0 {
		panic("no return value specified for Since")
	}

	var r0 core.Duration
	if rf, ok := ret.Get(0).(func(time.Time) core.Duration); ok {
		r0 = rf(t)
	} else {
		r0 = ret.Get(0).(core.Duration)
	}

	return r0
}

// MockTimeProvider_Since_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Since'
type MockTimeProvider_Since_Call struct {
	*mock.Call
}

// Since is a helper method to define mock.On call
//   - t time.Time
func (_e *MockTimeProvider_Expecter) Since(t interface{}) *MockTimeProvider_Since_Call {
	return &MockTimeProvider_Since_Call{Call: _e.mock.On("Since", t)}
}

func (_c *MockTimeProvider_Since_Call) Run(run func(t time.Time)) *MockTimeProvider_Since_Call {
	_c.Call.Run(func(args mock.Arguments) {
		arg0 := args[0].(time.Time)
		run(arg0)
	})
	return _c
}

func (_c *MockTimeProvider_Since_Call) Return(_a0 core.Duration) *MockTimeProvider_Since_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTimeProvider_Since_Call) RunAndReturn(run func(time.Time) core.Duration) *MockTimeProvider_Since_Call {
	_c.Call.Return(run)
	return _c
}

// WithTimeout provides a mock function with given fields: ctx, timeout
func (_m *MockTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	ret := _m.Called(ctx, timeout)

	if len(ret) == 0 {
		panic("no return value specified for WithTimeout")
	}

	var r0 context.Context
	var r1 context.CancelFunc
	if rf, ok := ret.Get(0).(func(context.Context, core.Duration) (context.Context, context.CancelFunc)); ok {
		return rf(ctx, timeout)
	}
	if rf, ok := ret.Get(0).(func(context.Context, core.Duration) context.Context); ok {
		r0 = rf(ctx, timeout)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(context.Context)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, core.Duration) context.CancelFunc); ok {
		r1 = rf(ctx, timeout)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(context.CancelFunc)
		}
	}

	return r0, r1
}

// MockTimeProvider_WithTimeout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WithTimeout'
type MockTimeProvider_WithTimeout_Call struct {
	*mock.Call
}

// WithTimeout is a helper method to define mock.On call
//   - ctx context.Context
//   - timeout core.Duration
func (_e *MockTimeProvider_Expecter) WithTimeout(ctx interface{}, timeout interface{}) *MockTimeProvider_WithTimeout_Call {
	return &MockTimeProvider_WithTimeout_Call{Call: _e.mock.On("WithTimeout", ctx, timeout)}
}

func (_c *MockTimeProvider_WithTimeout_Call) Run(run func(ctx context.Context, timeout core.Duration)) *MockTimeProvider_WithTimeout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		arg1 := args[1].(core.Duration)
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTimeProvider_WithTimeout_Call) Return(_a0 context.Context, _a1 context.CancelFunc) *MockTimeProvider_WithTimeout_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTimeProvider_WithTimeout_Call) RunAndReturn(run func(context.Context, core.Duration) (context.Context, context.CancelFunc)) *MockTimeProvider_WithTimeout_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTimeProvider creates a new instance of MockTimeProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	mock := &MockTimeProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
