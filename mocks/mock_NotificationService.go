package mocks

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/notification"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	mock "github.com/stretchr/testify/mock"
)

// MockNotificationService is an autogenerated mock type for the NotificationService type
type MockNotificationService struct {
	mock.Mock
}

type MockNotificationService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationService) EXPECT() *MockNotificationService_Expecter {
	return &MockNotificationService_Expecter{mock: &_m.Mock}
}

// ListNotifications provides a mock function with given fields: ctx, p, q
func (_m *MockNotificationService) ListNotifications(ctx context.Context, p domain.Principal, q notification.Query) (*query.Result[notification.Notification], error) {
	ret := _m.Called(ctx, p, q)

	if len(ret) == 0 {
		panic("no return value specified for ListNotifications")
	}

	var r0 *query.Result[notification.Notification]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, notification.Query) (*query.Result[notification.Notification], error)); ok {
		return rf(ctx, p, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, notification.Query) *query.Result[notification.Notification]); ok {
		r0 = rf(ctx, p, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*query.Result[notification.Notification])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, notification.Query) error); ok {
		r1 = rf(ctx, p, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockNotificationService_ListNotifications_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListNotifications'
type MockNotificationService_ListNotifications_Call struct {
	*mock.Call
}

// ListNotifications is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - q notification.Query
func (_e *MockNotificationService_Expecter) ListNotifications(ctx interface{}, p interface{}, q interface{}) *MockNotificationService_ListNotifications_Call {
	return &MockNotificationService_ListNotifications_Call{Call: _e.mock.On("ListNotifications", ctx, p, q)}
}

func (_c *MockNotificationService_ListNotifications_Call) Run(run func(ctx context.Context, p domain.Principal, q notification.Query)) *MockNotificationService_ListNotifications_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(notification.Query))
	})
	return _c
}

func (_c *MockNotificationService_ListNotifications_Call) Return(_a0 *query.Result[notification.Notification], _a1 error) *MockNotificationService_ListNotifications_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_ListNotifications_Call) RunAndReturn(run func(context.Context, domain.Principal, notification.Query) (*query.Result[notification.Notification], error)) *MockNotificationService_ListNotifications_Call {
	_c.Call.Return(run)
	return _c
}

// MarkAllRead provides a mock function with given fields: ctx, p
func (_m *MockNotificationService) MarkAllRead(ctx context.Context, p domain.Principal) (int64, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for MarkAllRead")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal) (int64, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal) int64); ok {
		r0 = rf(ctx, p)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockNotificationService_MarkAllRead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkAllRead'
type MockNotificationService_MarkAllRead_Call struct {
	*mock.Call
}

// MarkAllRead is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
func (_e *MockNotificationService_Expecter) MarkAllRead(ctx interface{}, p interface{}) *MockNotificationService_MarkAllRead_Call {
	return &MockNotificationService_MarkAllRead_Call{Call: _e.mock.On("MarkAllRead", ctx, p)}
}

func (_c *MockNotificationService_MarkAllRead_Call) Run(run func(ctx context.Context, p domain.Principal)) *MockNotificationService_MarkAllRead_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal))
	})
	return _c
}

func (_c *MockNotificationService_MarkAllRead_Call) Return(_a0 int64, _a1 error) *MockNotificationService_MarkAllRead_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_MarkAllRead_Call) RunAndReturn(run func(context.Context, domain.Principal) (int64, error)) *MockNotificationService_MarkAllRead_Call {
	_c.Call.Return(run)
	return _c
}

// MarkNotificationRead provides a mock function with given fields: ctx, p, id
func (_m *MockNotificationService) MarkNotificationRead(ctx context.Context, p domain.Principal, id int64) (*notification.Notification, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for MarkNotificationRead")
	}

	var r0 *notification.Notification
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*notification.Notification, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *notification.Notification); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*notification.Notification)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockNotificationService_MarkNotificationRead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkNotificationRead'
type MockNotificationService_MarkNotificationRead_Call struct {
	*mock.Call
}

// MarkNotificationRead is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockNotificationService_Expecter) MarkNotificationRead(ctx interface{}, p interface{}, id interface{}) *MockNotificationService_MarkNotificationRead_Call {
	return &MockNotificationService_MarkNotificationRead_Call{Call: _e.mock.On("MarkNotificationRead", ctx, p, id)}
}

func (_c *MockNotificationService_MarkNotificationRead_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockNotificationService_MarkNotificationRead_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockNotificationService_MarkNotificationRead_Call) Return(_a0 *notification.Notification, _a1 error) *MockNotificationService_MarkNotificationRead_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_MarkNotificationRead_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*notification.Notification, error)) *MockNotificationService_MarkNotificationRead_Call {
	_c.Call.Return(run)
	return _c
}

// UnreadCount provides a mock function with given fields: ctx, p
func (_m *MockNotificationService) UnreadCount(ctx context.Context, p domain.Principal) (int64, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for UnreadCount")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal) (int64, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal) int64); ok {
		r0 = rf(ctx, p)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockNotificationService_UnreadCount_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UnreadCount'
type MockNotificationService_UnreadCount_Call struct {
	*mock.Call
}

// UnreadCount is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
func (_e *MockNotificationService_Expecter) UnreadCount(ctx interface{}, p interface{}) *MockNotificationService_UnreadCount_Call {
	return &MockNotificationService_UnreadCount_Call{Call: _e.mock.On("UnreadCount", ctx, p)}
}

func (_c *MockNotificationService_UnreadCount_Call) Run(run func(ctx context.Context, p domain.Principal)) *MockNotificationService_UnreadCount_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal))
	})
	return _c
}

func (_c *MockNotificationService_UnreadCount_Call) Return(_a0 int64, _a1 error) *MockNotificationService_UnreadCount_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_UnreadCount_Call) RunAndReturn(run func(context.Context, domain.Principal) (int64, error)) *MockNotificationService_UnreadCount_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockNotificationService creates a new instance of MockNotificationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationService {
	mock := &MockNotificationService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
