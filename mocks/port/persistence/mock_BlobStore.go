package persistence

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockBlobStore is a mock type for the BlobStore type
type MockBlobStore struct {
	mock.Mock
}

type MockBlobStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBlobStore) EXPECT() *MockBlobStore_Expecter {
	return &MockBlobStore_Expecter{mock: &_m.Mock}
}

// Save provides a mock function with given fields: ctx, key, data
func (_m *MockBlobStore) Save(ctx context.Context, key uint32, data []byte) error {
	ret := _m.Called(ctx, key, data)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint32, []byte) error); ok {
		r0 = rf(ctx, key, data)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBlobStore_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockBlobStore_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - key uint32
//   - data []byte
func (_e *MockBlobStore_Expecter) Save(ctx interface{}, key interface{}, data interface{}) *MockBlobStore_Save_Call {
	return &MockBlobStore_Save_Call{Call: _e.mock.On("Save", ctx, key, data)}
}

func (_c *MockBlobStore_Save_Call) Run(run func(ctx context.Context, key uint32, data []byte)) *MockBlobStore_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		arg1 := args[1].(uint32)
		var arg2 []byte
		if args[2] != nil {
			arg2 = args[2].([]byte)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBlobStore_Save_Call) Return(_a0 error) *MockBlobStore_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBlobStore_Save_Call) RunAndReturn(run func(context.Context, uint32, []byte) error) *MockBlobStore_Save_Call {
	_c.Call.Return(run)
	return _c
}

// Load provides a mock function with given fields: ctx, key, size
func (_m *MockBlobStore) Load(ctx context.Context, key uint32, size int) ([]byte, error) {
	ret := _m.Called(ctx, key, size)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uint32, int) ([]byte, error)); ok {
		return rf(ctx, key, size)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uint32, int) []byte); ok {
		r0 = rf(ctx, key, size)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uint32, int) error); ok {
		r1 = rf(ctx, key, size)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBlobStore_Load_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Load'
type MockBlobStore_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call
//   - ctx context.Context
//   - key uint32
//   - size int
func (_e *MockBlobStore_Expecter) Load(ctx interface{}, key interface{}, size interface{}) *MockBlobStore_Load_Call {
	return &MockBlobStore_Load_Call{Call: _e.mock.On("Load", ctx, key, size)}
}

func (_c *MockBlobStore_Load_Call) Run(run func(ctx context.Context, key uint32, size int)) *MockBlobStore_Load_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		arg1 := args[1].(uint32)
		arg2 := args[2].(int)
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockBlobStore_Load_Call) Return(_a0 []byte, _a1 error) *MockBlobStore_Load_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockBlobStore_Load_Call) RunAndReturn(run func(context.Context, uint32, int) ([]byte, error)) *MockBlobStore_Load_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields: 
func (_m *MockBlobStore) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBlobStore_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockBlobStore_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockBlobStore_Expecter) Close() *MockBlobStore_Close_Call {
	return &MockBlobStore_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockBlobStore_Close_Call) Run(run func()) *MockBlobStore_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockBlobStore_Close_Call) Return(_a0 error) *MockBlobStore_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBlobStore_Close_Call) RunAndReturn(run func() error) *MockBlobStore_Close_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBlobStore creates a new instance of MockBlobStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBlobStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBlobStore {
	mock := &MockBlobStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
