package mocks

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/user"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockUserService is an autogenerated mock type for the UserService type
type MockUserService struct {
	mock.Mock
}

type MockUserService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserService) EXPECT() *MockUserService_Expecter {
	return &MockUserService_Expecter{mock: &_m.Mock}
}

// Authenticate provides a mock function with given fields: ctx, token
func (_m *MockUserService) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 domain.Principal
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (domain.Principal, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) domain.Principal); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Get(0).(domain.Principal)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockUserService_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockUserService_Expecter) Authenticate(ctx interface{}, token interface{}) *MockUserService_Authenticate_Call {
	return &MockUserService_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, token)}
}

func (_c *MockUserService_Authenticate_Call) Run(run func(ctx context.Context, token string)) *MockUserService_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUserService_Authenticate_Call) Return(_a0 domain.Principal, _a1 error) *MockUserService_Authenticate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_Authenticate_Call) RunAndReturn(run func(context.Context, string) (domain.Principal, error)) *MockUserService_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// DeactivateUser provides a mock function with given fields: ctx, p, id
func (_m *MockUserService) DeactivateUser(ctx context.Context, p domain.Principal, id int64) (*user.User, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for DeactivateUser")
	}

	var r0 *user.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*user.User, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *user.User); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*user.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_DeactivateUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeactivateUser'
type MockUserService_DeactivateUser_Call struct {
	*mock.Call
}

// DeactivateUser is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockUserService_Expecter) DeactivateUser(ctx interface{}, p interface{}, id interface{}) *MockUserService_DeactivateUser_Call {
	return &MockUserService_DeactivateUser_Call{Call: _e.mock.On("DeactivateUser", ctx, p, id)}
}

func (_c *MockUserService_DeactivateUser_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockUserService_DeactivateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockUserService_DeactivateUser_Call) Return(_a0 *user.User, _a1 error) *MockUserService_DeactivateUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_DeactivateUser_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*user.User, error)) *MockUserService_DeactivateUser_Call {
	_c.Call.Return(run)
	return _c
}

// GetUser provides a mock function with given fields: ctx, p, id
func (_m *MockUserService) GetUser(ctx context.Context, p domain.Principal, id int64) (*user.User, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for GetUser")
	}

	var r0 *user.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*user.User, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *user.User); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*user.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_GetUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetUser'
type MockUserService_GetUser_Call struct {
	*mock.Call
}

// GetUser is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockUserService_Expecter) GetUser(ctx interface{}, p interface{}, id interface{}) *MockUserService_GetUser_Call {
	return &MockUserService_GetUser_Call{Call: _e.mock.On("GetUser", ctx, p, id)}
}

func (_c *MockUserService_GetUser_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockUserService_GetUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockUserService_GetUser_Call) Return(_a0 *user.User, _a1 error) *MockUserService_GetUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_GetUser_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*user.User, error)) *MockUserService_GetUser_Call {
	_c.Call.Return(run)
	return _c
}

// ListUsers provides a mock function with given fields: ctx, p, q
func (_m *MockUserService) ListUsers(ctx context.Context, p domain.Principal, q user.Query) (*query.Result[user.User], error) {
	ret := _m.Called(ctx, p, q)

	if len(ret) == 0 {
		panic("no return value specified for ListUsers")
	}

	var r0 *query.Result[user.User]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, user.Query) (*query.Result[user.User], error)); ok {
		return rf(ctx, p, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, user.Query) *query.Result[user.User]); ok {
		r0 = rf(ctx, p, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*query.Result[user.User])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, user.Query) error); ok {
		r1 = rf(ctx, p, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_ListUsers_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListUsers'
type MockUserService_ListUsers_Call struct {
	*mock.Call
}

// ListUsers is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - q user.Query
func (_e *MockUserService_Expecter) ListUsers(ctx interface{}, p interface{}, q interface{}) *MockUserService_ListUsers_Call {
	return &MockUserService_ListUsers_Call{Call: _e.mock.On("ListUsers", ctx, p, q)}
}

func (_c *MockUserService_ListUsers_Call) Run(run func(ctx context.Context, p domain.Principal, q user.Query)) *MockUserService_ListUsers_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(user.Query))
	})
	return _c
}

func (_c *MockUserService_ListUsers_Call) Return(_a0 *query.Result[user.User], _a1 error) *MockUserService_ListUsers_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_ListUsers_Call) RunAndReturn(run func(context.Context, domain.Principal, user.Query) (*query.Result[user.User], error)) *MockUserService_ListUsers_Call {
	_c.Call.Return(run)
	return _c
}

// Login provides a mock function with given fields: ctx, login, password
func (_m *MockUserService) Login(ctx context.Context, login string, password string) (*ports.AuthResult, error) {
	ret := _m.Called(ctx, login, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *ports.AuthResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*ports.AuthResult, error)); ok {
		return rf(ctx, login, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *ports.AuthResult); ok {
		r0 = rf(ctx, login, password)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ports.AuthResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, login, password)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockUserService_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
//   - ctx context.Context
//   - login string
//   - password string
func (_e *MockUserService_Expecter) Login(ctx interface{}, login interface{}, password interface{}) *MockUserService_Login_Call {
	return &MockUserService_Login_Call{Call: _e.mock.On("Login", ctx, login, password)}
}

func (_c *MockUserService_Login_Call) Run(run func(ctx context.Context, login string, password string)) *MockUserService_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockUserService_Login_Call) Return(_a0 *ports.AuthResult, _a1 error) *MockUserService_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_Login_Call) RunAndReturn(run func(context.Context, string, string) (*ports.AuthResult, error)) *MockUserService_Login_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, in
func (_m *MockUserService) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	ret := _m.Called(ctx, in)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *user.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, user.RegisterInput) (*user.User, error)); ok {
		return rf(ctx, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, user.RegisterInput) *user.User); ok {
		r0 = rf(ctx, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*user.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, user.RegisterInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockUserService_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - in user.RegisterInput
func (_e *MockUserService_Expecter) Register(ctx interface{}, in interface{}) *MockUserService_Register_Call {
	return &MockUserService_Register_Call{Call: _e.mock.On("Register", ctx, in)}
}

func (_c *MockUserService_Register_Call) Run(run func(ctx context.Context, in user.RegisterInput)) *MockUserService_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(user.RegisterInput))
	})
	return _c
}

func (_c *MockUserService_Register_Call) Return(_a0 *user.User, _a1 error) *MockUserService_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_Register_Call) RunAndReturn(run func(context.Context, user.RegisterInput) (*user.User, error)) *MockUserService_Register_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateUser provides a mock function with given fields: ctx, p, id, in
func (_m *MockUserService) UpdateUser(ctx context.Context, p domain.Principal, id int64, in user.UpdateInput) (*user.User, error) {
	ret := _m.Called(ctx, p, id, in)

	if len(ret) == 0 {
		panic("no return value specified for UpdateUser")
	}

	var r0 *user.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, user.UpdateInput) (*user.User, error)); ok {
		return rf(ctx, p, id, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, user.UpdateInput) *user.User); ok {
		r0 = rf(ctx, p, id, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*user.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64, user.UpdateInput) error); ok {
		r1 = rf(ctx, p, id, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserService_UpdateUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateUser'
type MockUserService_UpdateUser_Call struct {
	*mock.Call
}

// UpdateUser is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
//   - in user.UpdateInput
func (_e *MockUserService_Expecter) UpdateUser(ctx interface{}, p interface{}, id interface{}, in interface{}) *MockUserService_UpdateUser_Call {
	return &MockUserService_UpdateUser_Call{Call: _e.mock.On("UpdateUser", ctx, p, id, in)}
}

func (_c *MockUserService_UpdateUser_Call) Run(run func(ctx context.Context, p domain.Principal, id int64, in user.UpdateInput)) *MockUserService_UpdateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(user.UpdateInput))
	})
	return _c
}

func (_c *MockUserService_UpdateUser_Call) Return(_a0 *user.User, _a1 error) *MockUserService_UpdateUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserService_UpdateUser_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, user.UpdateInput) (*user.User, error)) *MockUserService_UpdateUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserService creates a new instance of MockUserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserService {
	mock := &MockUserService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
