package mocks

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockTaskService is an autogenerated mock type for the TaskService type
type MockTaskService struct {
	mock.Mock
}

type MockTaskService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTaskService) EXPECT() *MockTaskService_Expecter {
	return &MockTaskService_Expecter{mock: &_m.Mock}
}

// AssignTask provides a mock function with given fields: ctx, p, id, assigneeID
func (_m *MockTaskService) AssignTask(ctx context.Context, p domain.Principal, id int64, assigneeID int64) (*task.Task, error) {
	ret := _m.Called(ctx, p, id, assigneeID)

	if len(ret) == 0 {
		panic("no return value specified for AssignTask")
	}

	var r0 *task.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, int64) (*task.Task, error)); ok {
		return rf(ctx, p, id, assigneeID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, int64) *task.Task); ok {
		r0 = rf(ctx, p, id, assigneeID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*task.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64, int64) error); ok {
		r1 = rf(ctx, p, id, assigneeID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_AssignTask_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AssignTask'
type MockTaskService_AssignTask_Call struct {
	*mock.Call
}

// AssignTask is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
//   - assigneeID int64
func (_e *MockTaskService_Expecter) AssignTask(ctx interface{}, p interface{}, id interface{}, assigneeID interface{}) *MockTaskService_AssignTask_Call {
	return &MockTaskService_AssignTask_Call{Call: _e.mock.On("AssignTask", ctx, p, id, assigneeID)}
}

func (_c *MockTaskService_AssignTask_Call) Run(run func(ctx context.Context, p domain.Principal, id int64, assigneeID int64)) *MockTaskService_AssignTask_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(int64))
	})
	return _c
}

func (_c *MockTaskService_AssignTask_Call) Return(_a0 *task.Task, _a1 error) *MockTaskService_AssignTask_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_AssignTask_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, int64) (*task.Task, error)) *MockTaskService_AssignTask_Call {
	_c.Call.Return(run)
	return _c
}

// BulkUpdateTaskStatus provides a mock function with given fields: ctx, p, updates
func (_m *MockTaskService) BulkUpdateTaskStatus(ctx context.Context, p domain.Principal, updates []ports.StatusUpdate) (*ports.BulkUpdateResult, error) {
	ret := _m.Called(ctx, p, updates)

	if len(ret) == 0 {
		panic("no return value specified for BulkUpdateTaskStatus")
	}

	var r0 *ports.BulkUpdateResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, []ports.StatusUpdate) (*ports.BulkUpdateResult, error)); ok {
		return rf(ctx, p, updates)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, []ports.StatusUpdate) *ports.BulkUpdateResult); ok {
		r0 = rf(ctx, p, updates)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ports.BulkUpdateResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, []ports.StatusUpdate) error); ok {
		r1 = rf(ctx, p, updates)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_BulkUpdateTaskStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BulkUpdateTaskStatus'
type MockTaskService_BulkUpdateTaskStatus_Call struct {
	*mock.Call
}

// BulkUpdateTaskStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - updates []ports.StatusUpdate
func (_e *MockTaskService_Expecter) BulkUpdateTaskStatus(ctx interface{}, p interface{}, updates interface{}) *MockTaskService_BulkUpdateTaskStatus_Call {
	return &MockTaskService_BulkUpdateTaskStatus_Call{Call: _e.mock.On("BulkUpdateTaskStatus", ctx, p, updates)}
}

func (_c *MockTaskService_BulkUpdateTaskStatus_Call) Run(run func(ctx context.Context, p domain.Principal, updates []ports.StatusUpdate)) *MockTaskService_BulkUpdateTaskStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].([]ports.StatusUpdate))
	})
	return _c
}

func (_c *MockTaskService_BulkUpdateTaskStatus_Call) Return(_a0 *ports.BulkUpdateResult, _a1 error) *MockTaskService_BulkUpdateTaskStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_BulkUpdateTaskStatus_Call) RunAndReturn(run func(context.Context, domain.Principal, []ports.StatusUpdate) (*ports.BulkUpdateResult, error)) *MockTaskService_BulkUpdateTaskStatus_Call {
	_c.Call.Return(run)
	return _c
}

// CreateTask provides a mock function with given fields: ctx, p, in
func (_m *MockTaskService) CreateTask(ctx context.Context, p domain.Principal, in task.CreateInput) (*task.Task, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for CreateTask")
	}

	var r0 *task.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, task.CreateInput) (*task.Task, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, task.CreateInput) *task.Task); ok {
		r0 = rf(ctx, p, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*task.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, task.CreateInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_CreateTask_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTask'
type MockTaskService_CreateTask_Call struct {
	*mock.Call
}

// CreateTask is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - in task.CreateInput
func (_e *MockTaskService_Expecter) CreateTask(ctx interface{}, p interface{}, in interface{}) *MockTaskService_CreateTask_Call {
	return &MockTaskService_CreateTask_Call{Call: _e.mock.On("CreateTask", ctx, p, in)}
}

func (_c *MockTaskService_CreateTask_Call) Run(run func(ctx context.Context, p domain.Principal, in task.CreateInput)) *MockTaskService_CreateTask_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(task.CreateInput))
	})
	return _c
}

func (_c *MockTaskService_CreateTask_Call) Return(_a0 *task.Task, _a1 error) *MockTaskService_CreateTask_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_CreateTask_Call) RunAndReturn(run func(context.Context, domain.Principal, task.CreateInput) (*task.Task, error)) *MockTaskService_CreateTask_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteTask provides a mock function with given fields: ctx, p, id
func (_m *MockTaskService) DeleteTask(ctx context.Context, p domain.Principal, id int64) error {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteTask")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) error); ok {
		r0 = rf(ctx, p, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTaskService_DeleteTask_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteTask'
type MockTaskService_DeleteTask_Call struct {
	*mock.Call
}

// DeleteTask is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockTaskService_Expecter) DeleteTask(ctx interface{}, p interface{}, id interface{}) *MockTaskService_DeleteTask_Call {
	return &MockTaskService_DeleteTask_Call{Call: _e.mock.On("DeleteTask", ctx, p, id)}
}

func (_c *MockTaskService_DeleteTask_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockTaskService_DeleteTask_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockTaskService_DeleteTask_Call) Return(_a0 error) *MockTaskService_DeleteTask_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTaskService_DeleteTask_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) error) *MockTaskService_DeleteTask_Call {
	_c.Call.Return(run)
	return _c
}

// GetTask provides a mock function with given fields: ctx, p, id
func (_m *MockTaskService) GetTask(ctx context.Context, p domain.Principal, id int64) (*task.Task, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for GetTask")
	}

	var r0 *task.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*task.Task, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *task.Task); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*task.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_GetTask_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTask'
type MockTaskService_GetTask_Call struct {
	*mock.Call
}

// GetTask is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockTaskService_Expecter) GetTask(ctx interface{}, p interface{}, id interface{}) *MockTaskService_GetTask_Call {
	return &MockTaskService_GetTask_Call{Call: _e.mock.On("GetTask", ctx, p, id)}
}

func (_c *MockTaskService_GetTask_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockTaskService_GetTask_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockTaskService_GetTask_Call) Return(_a0 *task.Task, _a1 error) *MockTaskService_GetTask_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_GetTask_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*task.Task, error)) *MockTaskService_GetTask_Call {
	_c.Call.Return(run)
	return _c
}

// ListTasks provides a mock function with given fields: ctx, p, q
func (_m *MockTaskService) ListTasks(ctx context.Context, p domain.Principal, q task.Query) (*query.Result[task.Task], error) {
	ret := _m.Called(ctx, p, q)

	if len(ret) == 0 {
		panic("no return value specified for ListTasks")
	}

	var r0 *query.Result[task.Task]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, task.Query) (*query.Result[task.Task], error)); ok {
		return rf(ctx, p, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, task.Query) *query.Result[task.Task]); ok {
		r0 = rf(ctx, p, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*query.Result[task.Task])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, task.Query) error); ok {
		r1 = rf(ctx, p, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_ListTasks_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTasks'
type MockTaskService_ListTasks_Call struct {
	*mock.Call
}

// ListTasks is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - q task.Query
func (_e *MockTaskService_Expecter) ListTasks(ctx interface{}, p interface{}, q interface{}) *MockTaskService_ListTasks_Call {
	return &MockTaskService_ListTasks_Call{Call: _e.mock.On("ListTasks", ctx, p, q)}
}

func (_c *MockTaskService_ListTasks_Call) Run(run func(ctx context.Context, p domain.Principal, q task.Query)) *MockTaskService_ListTasks_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(task.Query))
	})
	return _c
}

func (_c *MockTaskService_ListTasks_Call) Return(_a0 *query.Result[task.Task], _a1 error) *MockTaskService_ListTasks_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_ListTasks_Call) RunAndReturn(run func(context.Context, domain.Principal, task.Query) (*query.Result[task.Task], error)) *MockTaskService_ListTasks_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateTask provides a mock function with given fields: ctx, p, id, in
func (_m *MockTaskService) UpdateTask(ctx context.Context, p domain.Principal, id int64, in task.UpdateInput) (*task.Task, error) {
	ret := _m.Called(ctx, p, id, in)

	if len(ret) == 0 {
		panic("no return value specified for UpdateTask")
	}

	var r0 *task.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, task.UpdateInput) (*task.Task, error)); ok {
		return rf(ctx, p, id, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, task.UpdateInput) *task.Task); ok {
		r0 = rf(ctx, p, id, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*task.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64, task.UpdateInput) error); ok {
		r1 = rf(ctx, p, id, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_UpdateTask_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateTask'
type MockTaskService_UpdateTask_Call struct {
	*mock.Call
}

// UpdateTask is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
//   - in task.UpdateInput
func (_e *MockTaskService_Expecter) UpdateTask(ctx interface{}, p interface{}, id interface{}, in interface{}) *MockTaskService_UpdateTask_Call {
	return &MockTaskService_UpdateTask_Call{Call: _e.mock.On("UpdateTask", ctx, p, id, in)}
}

func (_c *MockTaskService_UpdateTask_Call) Run(run func(ctx context.Context, p domain.Principal, id int64, in task.UpdateInput)) *MockTaskService_UpdateTask_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(task.UpdateInput))
	})
	return _c
}

func (_c *MockTaskService_UpdateTask_Call) Return(_a0 *task.Task, _a1 error) *MockTaskService_UpdateTask_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_UpdateTask_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, task.UpdateInput) (*task.Task, error)) *MockTaskService_UpdateTask_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateTaskStatus provides a mock function with given fields: ctx, p, id, status
func (_m *MockTaskService) UpdateTaskStatus(ctx context.Context, p domain.Principal, id int64, status task.Status) (*task.Task, error) {
	ret := _m.Called(ctx, p, id, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateTaskStatus")
	}

	var r0 *task.Task
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, task.Status) (*task.Task, error)); ok {
		return rf(ctx, p, id, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, task.Status) *task.Task); ok {
		r0 = rf(ctx, p, id, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*task.Task)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64, task.Status) error); ok {
		r1 = rf(ctx, p, id, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTaskService_UpdateTaskStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateTaskStatus'
type MockTaskService_UpdateTaskStatus_Call struct {
	*mock.Call
}

// UpdateTaskStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
//   - status task.Status
func (_e *MockTaskService_Expecter) UpdateTaskStatus(ctx interface{}, p interface{}, id interface{}, status interface{}) *MockTaskService_UpdateTaskStatus_Call {
	return &MockTaskService_UpdateTaskStatus_Call{Call: _e.mock.On("UpdateTaskStatus", ctx, p, id, status)}
}

func (_c *MockTaskService_UpdateTaskStatus_Call) Run(run func(ctx context.Context, p domain.Principal, id int64, status task.Status)) *MockTaskService_UpdateTaskStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(task.Status))
	})
	return _c
}

func (_c *MockTaskService_UpdateTaskStatus_Call) Return(_a0 *task.Task, _a1 error) *MockTaskService_UpdateTaskStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTaskService_UpdateTaskStatus_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, task.Status) (*task.Task, error)) *MockTaskService_UpdateTaskStatus_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTaskService creates a new instance of MockTaskService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTaskService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTaskService {
	mock := &MockTaskService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
