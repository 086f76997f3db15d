package mocks

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	mock "github.com/stretchr/testify/mock"
)

// MockTeamService is an autogenerated mock type for the TeamService type
type MockTeamService struct {
	mock.Mock
}

type MockTeamService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTeamService) EXPECT() *MockTeamService_Expecter {
	return &MockTeamService_Expecter{mock: &_m.Mock}
}

// AddMember provides a mock function with given fields: ctx, p, teamID, userID, role
func (_m *MockTeamService) AddMember(ctx context.Context, p domain.Principal, teamID int64, userID int64, role team.MemberRole) (*team.Membership, error) {
	ret := _m.Called(ctx, p, teamID, userID, role)

	if len(ret) == 0 {
		panic("no return value specified for AddMember")
	}

	var r0 *team.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, int64, team.MemberRole) (*team.Membership, error)); ok {
		return rf(ctx, p, teamID, userID, role)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, int64, team.MemberRole) *team.Membership); ok {
		r0 = rf(ctx, p, teamID, userID, role)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*team.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64, int64, team.MemberRole) error); ok {
		r1 = rf(ctx, p, teamID, userID, role)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamService_AddMember_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddMember'
type MockTeamService_AddMember_Call struct {
	*mock.Call
}

// AddMember is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - teamID int64
//   - userID int64
//   - role team.MemberRole
func (_e *MockTeamService_Expecter) AddMember(ctx interface{}, p interface{}, teamID interface{}, userID interface{}, role interface{}) *MockTeamService_AddMember_Call {
	return &MockTeamService_AddMember_Call{Call: _e.mock.On("AddMember", ctx, p, teamID, userID, role)}
}

func (_c *MockTeamService_AddMember_Call) Run(run func(ctx context.Context, p domain.Principal, teamID int64, userID int64, role team.MemberRole)) *MockTeamService_AddMember_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(int64), args[4].(team.MemberRole))
	})
	return _c
}

func (_c *MockTeamService_AddMember_Call) Return(_a0 *team.Membership, _a1 error) *MockTeamService_AddMember_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamService_AddMember_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, int64, team.MemberRole) (*team.Membership, error)) *MockTeamService_AddMember_Call {
	_c.Call.Return(run)
	return _c
}

// CreateTeam provides a mock function with given fields: ctx, p, in
func (_m *MockTeamService) CreateTeam(ctx context.Context, p domain.Principal, in team.CreateInput) (*team.Team, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for CreateTeam")
	}

	var r0 *team.Team
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, team.CreateInput) (*team.Team, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, team.CreateInput) *team.Team); ok {
		r0 = rf(ctx, p, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*team.Team)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, team.CreateInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamService_CreateTeam_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTeam'
type MockTeamService_CreateTeam_Call struct {
	*mock.Call
}

// CreateTeam is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - in team.CreateInput
func (_e *MockTeamService_Expecter) CreateTeam(ctx interface{}, p interface{}, in interface{}) *MockTeamService_CreateTeam_Call {
	return &MockTeamService_CreateTeam_Call{Call: _e.mock.On("CreateTeam", ctx, p, in)}
}

func (_c *MockTeamService_CreateTeam_Call) Run(run func(ctx context.Context, p domain.Principal, in team.CreateInput)) *MockTeamService_CreateTeam_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(team.CreateInput))
	})
	return _c
}

func (_c *MockTeamService_CreateTeam_Call) Return(_a0 *team.Team, _a1 error) *MockTeamService_CreateTeam_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamService_CreateTeam_Call) RunAndReturn(run func(context.Context, domain.Principal, team.CreateInput) (*team.Team, error)) *MockTeamService_CreateTeam_Call {
	_c.Call.Return(run)
	return _c
}

// GetTeam provides a mock function with given fields: ctx, p, id
func (_m *MockTeamService) GetTeam(ctx context.Context, p domain.Principal, id int64) (*team.Team, error) {
	ret := _m.Called(ctx, p, id)

	if len(ret) == 0 {
		panic("no return value specified for GetTeam")
	}

	var r0 *team.Team
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) (*team.Team, error)); ok {
		return rf(ctx, p, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) *team.Team); ok {
		r0 = rf(ctx, p, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*team.Team)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamService_GetTeam_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTeam'
type MockTeamService_GetTeam_Call struct {
	*mock.Call
}

// GetTeam is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - id int64
func (_e *MockTeamService_Expecter) GetTeam(ctx interface{}, p interface{}, id interface{}) *MockTeamService_GetTeam_Call {
	return &MockTeamService_GetTeam_Call{Call: _e.mock.On("GetTeam", ctx, p, id)}
}

func (_c *MockTeamService_GetTeam_Call) Run(run func(ctx context.Context, p domain.Principal, id int64)) *MockTeamService_GetTeam_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockTeamService_GetTeam_Call) Return(_a0 *team.Team, _a1 error) *MockTeamService_GetTeam_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamService_GetTeam_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) (*team.Team, error)) *MockTeamService_GetTeam_Call {
	_c.Call.Return(run)
	return _c
}

// ListMembers provides a mock function with given fields: ctx, p, teamID
func (_m *MockTeamService) ListMembers(ctx context.Context, p domain.Principal, teamID int64) ([]team.Membership, error) {
	ret := _m.Called(ctx, p, teamID)

	if len(ret) == 0 {
		panic("no return value specified for ListMembers")
	}

	var r0 []team.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) ([]team.Membership, error)); ok {
		return rf(ctx, p, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64) []team.Membership); ok {
		r0 = rf(ctx, p, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]team.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, int64) error); ok {
		r1 = rf(ctx, p, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamService_ListMembers_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMembers'
type MockTeamService_ListMembers_Call struct {
	*mock.Call
}

// ListMembers is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - teamID int64
func (_e *MockTeamService_Expecter) ListMembers(ctx interface{}, p interface{}, teamID interface{}) *MockTeamService_ListMembers_Call {
	return &MockTeamService_ListMembers_Call{Call: _e.mock.On("ListMembers", ctx, p, teamID)}
}

func (_c *MockTeamService_ListMembers_Call) Run(run func(ctx context.Context, p domain.Principal, teamID int64)) *MockTeamService_ListMembers_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64))
	})
	return _c
}

func (_c *MockTeamService_ListMembers_Call) Return(_a0 []team.Membership, _a1 error) *MockTeamService_ListMembers_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamService_ListMembers_Call) RunAndReturn(run func(context.Context, domain.Principal, int64) ([]team.Membership, error)) *MockTeamService_ListMembers_Call {
	_c.Call.Return(run)
	return _c
}

// ListTeams provides a mock function with given fields: ctx, p, q
func (_m *MockTeamService) ListTeams(ctx context.Context, p domain.Principal, q team.Query) (*query.Result[team.Team], error) {
	ret := _m.Called(ctx, p, q)

	if len(ret) == 0 {
		panic("no return value specified for ListTeams")
	}

	var r0 *query.Result[team.Team]
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, team.Query) (*query.Result[team.Team], error)); ok {
		return rf(ctx, p, q)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, team.Query) *query.Result[team.Team]); ok {
		r0 = rf(ctx, p, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*query.Result[team.Team])
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Principal, team.Query) error); ok {
		r1 = rf(ctx, p, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamService_ListTeams_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTeams'
type MockTeamService_ListTeams_Call struct {
	*mock.Call
}

// ListTeams is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - q team.Query
func (_e *MockTeamService_Expecter) ListTeams(ctx interface{}, p interface{}, q interface{}) *MockTeamService_ListTeams_Call {
	return &MockTeamService_ListTeams_Call{Call: _e.mock.On("ListTeams", ctx, p, q)}
}

func (_c *MockTeamService_ListTeams_Call) Run(run func(ctx context.Context, p domain.Principal, q team.Query)) *MockTeamService_ListTeams_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(team.Query))
	})
	return _c
}

func (_c *MockTeamService_ListTeams_Call) Return(_a0 *query.Result[team.Team], _a1 error) *MockTeamService_ListTeams_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamService_ListTeams_Call) RunAndReturn(run func(context.Context, domain.Principal, team.Query) (*query.Result[team.Team], error)) *MockTeamService_ListTeams_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveMember provides a mock function with given fields: ctx, p, teamID, userID
func (_m *MockTeamService) RemoveMember(ctx context.Context, p domain.Principal, teamID int64, userID int64) error {
	ret := _m.Called(ctx, p, teamID, userID)

	if len(ret) == 0 {
		panic("no return value specified for RemoveMember")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Principal, int64, int64) error); ok {
		r0 = rf(ctx, p, teamID, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTeamService_RemoveMember_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveMember'
type MockTeamService_RemoveMember_Call struct {
	*mock.Call
}

// RemoveMember is a helper method to define mock.On call
//   - ctx context.Context
//   - p domain.Principal
//   - teamID int64
//   - userID int64
func (_e *MockTeamService_Expecter) RemoveMember(ctx interface{}, p interface{}, teamID interface{}, userID interface{}) *MockTeamService_RemoveMember_Call {
	return &MockTeamService_RemoveMember_Call{Call: _e.mock.On("RemoveMember", ctx, p, teamID, userID)}
}

func (_c *MockTeamService_RemoveMember_Call) Run(run func(ctx context.Context, p domain.Principal, teamID int64, userID int64)) *MockTeamService_RemoveMember_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Principal), args[2].(int64), args[3].(int64))
	})
	return _c
}

func (_c *MockTeamService_RemoveMember_Call) Return(_a0 error) *MockTeamService_RemoveMember_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTeamService_RemoveMember_Call) RunAndReturn(run func(context.Context, domain.Principal, int64, int64) error) *MockTeamService_RemoveMember_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTeamService creates a new instance of MockTeamService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTeamService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeamService {
	mock := &MockTeamService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
