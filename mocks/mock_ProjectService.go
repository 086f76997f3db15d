package mocks

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/kanban"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockProjectService is an autogenerated mock type for the ProjectService type
type MockProjectService struct {
	mock.Mock
}

type MockProjectService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProjectService) EXPECT() *MockProjectService_Expecter {
	return &MockProjectService_Expecter{mock: &_m.Mock}
}

// CreateProject provides a mock function with given fields: ctx, p, in
func (_m *MockProjectService) CreateProject(ctx context.Context, p domain.Principal, in project.CreateInput) (*project.Project, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for CreateProject")
	}

	var r0 *project.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, project.CreateInput) (*project.Project, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, project.CreateInput) *project.Project); ok {
		r0 = rf(ctx, p, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*project.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, project.CreateInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_CreateProject_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateProject'
type MockProjectService_CreateProject_Call struct {
	*mock.Call
}

// CreateProject is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - in project.CreateInput
func (_e *MockProjectService_Expecter) CreateProject(ctx interface{}, p interface{}, in interface{}) *MockProjectService_CreateProject_Call {
	return &MockProjectService_CreateProject_Call{Call: _e.mock.On("CreateProject", ctx, p, in)}
}

func (_c *MockProjectService_CreateProject_Call) Run(run func(ctx context.Context, p domain.Principal, in project.CreateInput)) *MockProjectService_CreateProject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(project.CreateInput))
	})
	return _c
}

func (_c *MockProjectService_CreateProject_Call) Return(_a0 *project.Project, _a1 error) *MockProjectService_CreateProject_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_CreateProject_Call) RunAndReturn(run func(context.Context, domain.Principal, project.CreateInput) (*project.Project, error)) *MockProjectService_CreateProject_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteProject provides a mock function with given fields: ctx, p, id
func (_m *MockProjectService) DeleteProject(ctx context.Context, p domain.Principal, id int64) error {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteProject")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) error); ok {
		r0 = rf(ctx, p, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProjectService_DeleteProject_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteProject'
type MockProjectService_DeleteProject_Call struct {
	*mock.Call
}

// DeleteProject is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockProjectService_Expecter) DeleteProject(ctx interface{}, p interface{}, id interface{}) *MockProjectService_DeleteProject_Call {
	return &MockProjectService_DeleteProject_Call{Call: _e.mock.On("DeleteProject", ctx, p, id)}
}

func (_c *MockProjectService_DeleteProject_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockProjectService_DeleteProject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockProjectService_DeleteProject_Call) Return(_a0 error) *MockProjectService_DeleteProject_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProjectService_DeleteProject_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) error) *MockProjectService_DeleteProject_Call {
	_c.Call.Return(run)
	return _c
}

// GetKanbanBoard provides a mock function with given fields: ctx, p, id
func (_m *MockProjectService) GetKanbanBoard(ctx context.Context, p domain.Principal, id int64) (*kanban.Board, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for GetKanbanBoard")
	}

	var r0 *kanban.Board
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*kanban.Board, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *kanban.Board); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*kanban.Board)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_GetKanbanBoard_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetKanbanBoard'
type MockProjectService_GetKanbanBoard_Call struct {
	*mock.Call
}

// GetKanbanBoard is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockProjectService_Expecter) GetKanbanBoard(ctx interface{}, p interface{}, id interface{}) *MockProjectService_GetKanbanBoard_Call {
	return &MockProjectService_GetKanbanBoard_Call{Call: _e.mock.On("GetKanbanBoard", ctx, p, id)}
}

func (_c *MockProjectService_GetKanbanBoard_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockProjectService_GetKanbanBoard_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockProjectService_GetKanbanBoard_Call) Return(_a0 *kanban.Board, _a1 error) *MockProjectService_GetKanbanBoard_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_GetKanbanBoard_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*kanban.Board, error)) *MockProjectService_GetKanbanBoard_Call {
	_c.Call.Return(run)
	return _c
}

// GetProject provides a mock function with given fields: ctx, p, id
func (_m *MockProjectService) GetProject(ctx context.Context, p domain.Principal, id int64) (*project.Project, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for GetProject")
	}

	var r0 *project.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*project.Project, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *project.Project); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*project.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_GetProject_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProject'
type MockProjectService_GetProject_Call struct {
	*mock.Call
}

// GetProject is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockProjectService_Expecter) GetProject(ctx interface{}, p interface{}, id interface{}) *MockProjectService_GetProject_Call {
	return &MockProjectService_GetProject_Call{Call: _e.mock.On("GetProject", ctx, p, id)}
}

func (_c *MockProjectService_GetProject_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockProjectService_GetProject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockProjectService_GetProject_Call) Return(_a0 *project.Project, _a1 error) *MockProjectService_GetProject_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_GetProject_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*project.Project, error)) *MockProjectService_GetProject_Call {
	_c.Call.Return(run)
	return _c
}

// GetProjectStats provides a mock function with given fields: ctx, p, id
func (_m *MockProjectService) GetProjectStats(ctx context.Context, p domain.Principal, id int64) (*ports.ProjectStats, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for GetProjectStats")
	}

	var r0 *ports.ProjectStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*ports.ProjectStats, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *ports.ProjectStats); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ports.ProjectStats)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_GetProjectStats_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProjectStats'
type MockProjectService_GetProjectStats_Call struct {
	*mock.Call
}

// GetProjectStats is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockProjectService_Expecter) GetProjectStats(ctx interface{}, p interface{}, id interface{}) *MockProjectService_GetProjectStats_Call {
	return &MockProjectService_GetProjectStats_Call{Call: _e.mock.On("GetProjectStats", ctx, p, id)}
}

func (_c *MockProjectService_GetProjectStats_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockProjectService_GetProjectStats_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockProjectService_GetProjectStats_Call) Return(_a0 *ports.ProjectStats, _a1 error) *MockProjectService_GetProjectStats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_GetProjectStats_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*ports.ProjectStats, error)) *MockProjectService_GetProjectStats_Call {
	_c.Call.Return(run)
	return _c
}

// ListProjects provides a mock function with given fields: ctx, p, q
func (_m *MockProjectService) ListProjects(ctx context.Context, p domain.Principal, q project.Query) (*query.Result[project.Project], error) {
	ret := _m.Called(ctx, p, q)

	if len(ret) == 0 {
		panic("no return value specified for ListProjects")
	}

	var r0 *query.Result[project.Project]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, project.Query) (*query.Result[project.Project], error)); ok {
		return rf(ctx, p, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, project.Query) *query.Result[project.Project]); ok {
		r0 = rf(ctx, p, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*query.Result[project.Project])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, project.Query) error); ok {
		r1 = rf(ctx, p, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_ListProjects_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListProjects'
type MockProjectService_ListProjects_Call struct {
	*mock.Call
}

// ListProjects is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - q project.Query
func (_e *MockProjectService_Expecter) ListProjects(ctx interface{}, p interface{}, q interface{}) *MockProjectService_ListProjects_Call {
	return &MockProjectService_ListProjects_Call{Call: _e.mock.On("ListProjects", ctx, p, q)}
}

func (_c *MockProjectService_ListProjects_Call) Run(run func(ctx context.Context, p domain.Principal, q project.Query)) *MockProjectService_ListProjects_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(project.Query))
	})
	return _c
}

func (_c *MockProjectService_ListProjects_Call) Return(_a0 *query.Result[project.Project], _a1 error) *MockProjectService_ListProjects_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_ListProjects_Call) RunAndReturn(run func(context.Context, domain.Principal, project.Query) (*query.Result[project.Project], error)) *MockProjectService_ListProjects_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProject provides a mock function with given fields: ctx, p, id, in
func (_m *MockProjectService) UpdateProject(ctx context.Context, p domain.Principal, id int64, in project.UpdateInput) (*project.Project, error) {
	ret := _m.Called(ctx, p, id, in)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProject")
	}

	var r0 *project.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, project.UpdateInput) (*project.Project, error)); ok {
		return rf(ctx, p, id, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, project.UpdateInput) *project.Project); ok {
		r0 = rf(ctx, p, id, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*project.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64, project.UpdateInput) error); ok {
		r1 = rf(ctx, p, id, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_UpdateProject_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProject'
type MockProjectService_UpdateProject_Call struct {
	*mock.Call
}

// UpdateProject is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
//   - in project.UpdateInput
func (_e *MockProjectService_Expecter) UpdateProject(ctx interface{}, p interface{}, id interface{}, in interface{}) *MockProjectService_UpdateProject_Call {
	return &MockProjectService_UpdateProject_Call{Call: _e.mock.On("UpdateProject", ctx, p, id, in)}
}

func (_c *MockProjectService_UpdateProject_Call) Run(run func(ctx context.Context, p domain.Principal, id int64, in project.UpdateInput)) *MockProjectService_UpdateProject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(project.UpdateInput))
	})
	return _c
}

func (_c *MockProjectService_UpdateProject_Call) Return(_a0 *project.Project, _a1 error) *MockProjectService_UpdateProject_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_UpdateProject_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, project.UpdateInput) (*project.Project, error)) *MockProjectService_UpdateProject_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProjectCompletion provides a mock function with given fields: ctx, p, id
func (_m *MockProjectService) UpdateProjectCompletion(ctx context.Context, p domain.Principal, id int64) (*project.Project, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProjectCompletion")
	}

	var r0 *project.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*project.Project, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *project.Project); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*project.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProjectService_UpdateProjectCompletion_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProjectCompletion'
type MockProjectService_UpdateProjectCompletion_Call struct {
	*mock.Call
}

// UpdateProjectCompletion is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockProjectService_Expecter) UpdateProjectCompletion(ctx interface{}, p interface{}, id interface{}) *MockProjectService_UpdateProjectCompletion_Call {
	return &MockProjectService_UpdateProjectCompletion_Call{Call: _e.mock.On("UpdateProjectCompletion", ctx, p, id)}
}

func (_c *MockProjectService_UpdateProjectCompletion_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockProjectService_UpdateProjectCompletion_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockProjectService_UpdateProjectCompletion_Call) Return(_a0 *project.Project, _a1 error) *MockProjectService_UpdateProjectCompletion_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProjectService_UpdateProjectCompletion_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*project.Project, error)) *MockProjectService_UpdateProjectCompletion_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProjectService creates a new instance of MockProjectService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProjectService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProjectService {
	mock := &MockProjectService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
