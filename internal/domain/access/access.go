// Package access decides whether a principal may view, edit or administer
// a task or project. The functions are pure; callers supply the ownership
// facts (project owner, team membership) they have loaded.
package access

import (
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
)

// Action is the level of access requested.
type Action string

const (
	ActionView  Action = "view"
	ActionEdit  Action = "edit"
	ActionAdmin Action = "admin"
)

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}

// TaskFacts are the ownership facts about a task beyond its own fields.
type TaskFacts struct {
	// ProjectOwnerID is the owner of the task's project, if it has one.
	ProjectOwnerID *int64
}

// CanAccessTask reports whether p may perform a on t.
//
//	view:  creator, assignee, project owner, admin
//	edit:  creator, assignee, admin
//	admin: creator, admin
func CanAccessTask(p domain.Principal, t *task.Task, facts TaskFacts, a Action) bool {
	if p.IsAdmin() {
		return true
	}
	creator := t.CreatedByID == p.ID
	switch a {
	case ActionView:
		return creator || t.IsAssignee(p.ID) ||
			(facts.ProjectOwnerID != nil && *facts.ProjectOwnerID == p.ID)
	case ActionEdit:
		return creator || t.IsAssignee(p.ID)
	case ActionAdmin:
		return creator
	default:
		return false
	}
}

// ProjectFacts are the ownership facts about a project beyond its own fields.
type ProjectFacts struct {
	// TeamMember is true when p belongs to the project's team.
	TeamMember bool
}

// CanAccessProject reports whether p may perform a on proj. Team membership
// and public visibility grant view only.
func CanAccessProject(p domain.Principal, proj *project.Project, facts ProjectFacts, a Action) bool {
	if p.IsAdmin() || proj.IsOwner(p.ID) {
		return true
	}
	if a != ActionView {
		return false
	}
	return proj.Visibility == project.VisibilityPublic || (proj.TeamID != nil && facts.TeamMember)
}

// ProjectNeedsMembership reports whether the view decision for proj depends
// on p's team membership, so callers only look it up when it matters.
func ProjectNeedsMembership(p domain.Principal, proj *project.Project) bool {
	return !p.IsAdmin() && !proj.IsOwner(p.ID) &&
		proj.Visibility != project.VisibilityPublic && proj.TeamID != nil
}

// TaskNeedsProjectOwner reports whether the view decision for t depends on
// its project's owner.
func TaskNeedsProjectOwner(p domain.Principal, t *task.Task) bool {
	return !p.IsAdmin() && t.CreatedByID != p.ID && !t.IsAssignee(p.ID) && t.ProjectID != nil
}

// CanViewTeam reports whether p may see tm given p's membership (nil when p
// is not a member).
func CanViewTeam(p domain.Principal, m *team.Membership) bool {
	return p.IsAdmin() || m != nil
}

// CanManageTeam reports whether p may change tm's membership.
func CanManageTeam(p domain.Principal, tm *team.Team) bool {
	return p.IsAdmin() || tm.LeaderID == p.ID
}

// CanViewUser reports whether p may read the full profile of userID.
func CanViewUser(p domain.Principal, userID int64) bool {
	return p.IsAdmin() || p.ID == userID
}

// CanEditUser reports whether p may apply an update to userID. Role and
// active-flag changes require admin.
func CanEditUser(p domain.Principal, userID int64, privileged bool) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ID == userID && !privileged
}
