package mocks

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockAdminService is an autogenerated mock type for the AdminService type
type MockAdminService struct {
	mock.Mock
}

type MockAdminService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAdminService) EXPECT() *MockAdminService_Expecter {
	return &MockAdminService_Expecter{mock: &_m.Mock}
}

// GetSystemStats provides a mock function with given fields: ctx, p
func (_m *MockAdminService) GetSystemStats(ctx context.Context, p domain.Principal) (*ports.SystemStats, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for GetSystemStats")
	}

	var r0 *ports.SystemStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal) (*ports.SystemStats, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal) *ports.SystemStats); ok {
		r0 = rf(ctx, p)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ports.SystemStats)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAdminService_GetSystemStats_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetSystemStats'
type MockAdminService_GetSystemStats_Call struct {
	*mock.Call
}

// GetSystemStats is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
func (_e *MockAdminService_Expecter) GetSystemStats(ctx interface{}, p interface{}) *MockAdminService_GetSystemStats_Call {
	return &MockAdminService_GetSystemStats_Call{Call: _e.mock.On("GetSystemStats", ctx, p)}
}

func (_c *MockAdminService_GetSystemStats_Call) Run(run func(ctx context.Context, p domain.Principal)) *MockAdminService_GetSystemStats_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal))
	})
	return _c
}

func (_c *MockAdminService_GetSystemStats_Call) Return(_a0 *ports.SystemStats, _a1 error) *MockAdminService_GetSystemStats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAdminService_GetSystemStats_Call) RunAndReturn(run func(context.Context, domain.Principal) (*ports.SystemStats, error)) *MockAdminService_GetSystemStats_Call {
	_c.Call.Return(run)
	return _c
}

// ListActivity provides a mock function with given fields: ctx, p, q
func (_m *MockAdminService) ListActivity(ctx context.Context, p domain.Principal, q activity.Query) (*query.Result[activity.Entry], error) {
	ret := _m.Called(ctx, p, q)

	if len(ret) == 0 {
		panic("no return value specified for ListActivity")
	}

	var r0 *query.Result[activity.Entry]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, activity.Query) (*query.Result[activity.Entry], error)); ok {
		return rf(ctx, p, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, activity.Query) *query.Result[activity.Entry]); ok {
		r0 = rf(ctx, p, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*query.Result[activity.Entry])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, activity.Query) error); ok {
		r1 = rf(ctx, p, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAdminService_ListActivity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListActivity'
type MockAdminService_ListActivity_Call struct {
	*mock.Call
}

// ListActivity is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - q activity.Query
func (_e *MockAdminService_Expecter) ListActivity(ctx interface{}, p interface{}, q interface{}) *MockAdminService_ListActivity_Call {
	return &MockAdminService_ListActivity_Call{Call: _e.mock.On("ListActivity", ctx, p, q)}
}

func (_c *MockAdminService_ListActivity_Call) Run(run func(ctx context.Context, p domain.Principal, q activity.Query)) *MockAdminService_ListActivity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(activity.Query))
	})
	return _c
}

func (_c *MockAdminService_ListActivity_Call) Return(_a0 *query.Result[activity.Entry], _a1 error) *MockAdminService_ListActivity_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAdminService_ListActivity_Call) RunAndReturn(run func(context.Context, domain.Principal, activity.Query) (*query.Result[activity.Entry], error)) *MockAdminService_ListActivity_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAdminService creates a new instance of MockAdminService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAdminService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminService {
	mock := &MockAdminService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
