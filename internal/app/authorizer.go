package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	appctx "github.com/jsamuelsen11/project-tracker/internal/app/context"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/access"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// authorizer resolves the ownership facts the access policy needs and
// reports every denial to the security auditor. Lookups are memoized in
// the request context when one is present.
type authorizer struct {
	projects ports.ProjectRepository
	teams    ports.TeamRepository
	audit    ports.SecurityAuditor
}

func newAuthorizer(projects ports.ProjectRepository, teams ports.TeamRepository, audit ports.SecurityAuditor) *authorizer {
	return &authorizer{projects: projects, teams: teams, audit: audit}
}

// task returns nil if p may perform a on t, or an error wrapping
// domain.ErrForbidden.
func (z *authorizer) task(ctx context.Context, p domain.Principal, t *task.Task, a access.Action) error {
	var facts access.TaskFacts
	if access.TaskNeedsProjectOwner(p, t) {
		owner, err := z.projectOwner(ctx, *t.ProjectID)
		if err != nil {
			return err
		}
		facts.ProjectOwnerID = owner
	}
	if access.CanAccessTask(p, t, facts, a) {
		return nil
	}
	return z.deny(ctx, domain.EntityTask, a, p, t.ID)
}

// project returns nil if p may perform a on proj, or an error wrapping
// domain.ErrForbidden.
func (z *authorizer) project(ctx context.Context, p domain.Principal, proj *project.Project, a access.Action) error {
	var facts access.ProjectFacts
	if access.ProjectNeedsMembership(p, proj) {
		member, err := z.isMember(ctx, *proj.TeamID, p.ID)
		if err != nil {
			return err
		}
		facts.TeamMember = member
	}
	if access.CanAccessProject(p, proj, facts, a) {
		return nil
	}
	return z.deny(ctx, domain.EntityProject, a, p, proj.ID)
}

// deny audits the refusal and returns the error the caller surfaces.
func (z *authorizer) deny(ctx context.Context, entity domain.EntityType, a access.Action, p domain.Principal, resourceID int64) error {
	if z.audit != nil {
		z.audit.LogSecurityEvent(ctx, deniedKind(entity, a), p.ID, resourceID)
	}
	return fmt.Errorf("%s %d: %s denied: %w", entity, resourceID, a, domain.ErrForbidden)
}

// projectOwner returns the owner of the project, or nil if the project no
// longer exists.
func (z *authorizer) projectOwner(ctx context.Context, projectID int64) (*int64, error) {
	proj, err := appctx.Memo(ctx, "project:"+strconv.FormatInt(projectID, 10), func(ctx context.Context) (*project.Project, error) {
		return z.projects.FindByID(ctx, projectID)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proj.OwnerID, nil
}

// isMember reports whether userID belongs to teamID.
func (z *authorizer) isMember(ctx context.Context, teamID, userID int64) (bool, error) {
	key := "membership:" + strconv.FormatInt(teamID, 10) + ":" + strconv.FormatInt(userID, 10)
	_, err := appctx.Memo(ctx, key, func(ctx context.Context) (struct{}, error) {
		_, err := z.teams.FindMembership(ctx, teamID, userID)
		return struct{}{}, err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func deniedKind(entity domain.EntityType, a access.Action) string {
	return entity.String() + "." + a.String()
}
