package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/domain/team"
	"github.com/jsamuelsen11/project-tracker/internal/testutil"
)

func TestTeamRepository_Memberships(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	lead := repos.User(t, "lead", domain.RoleUser)
	dev := repos.User(t, "dev", domain.RoleUser)

	tm, err := repos.Teams.Create(ctx, &team.Team{Name: "Core", LeaderID: lead.ID, IsActive: true})
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = repos.Teams.AddMember(ctx, &team.Membership{TeamID: tm.ID, UserID: lead.ID, Role: team.MemberLeader, JoinedAt: now})
	require.NoError(t, err)
	_, err = repos.Teams.AddMember(ctx, &team.Membership{TeamID: tm.ID, UserID: dev.ID, Role: team.MemberMember, JoinedAt: now.Add(time.Second)})
	require.NoError(t, err)

	_, err = repos.Teams.AddMember(ctx, &team.Membership{TeamID: tm.ID, UserID: dev.ID, Role: team.MemberMember, JoinedAt: now})
	assert.ErrorIs(t, err, domain.ErrConflict)

	members, err := repos.Teams.ListMembers(ctx, tm.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, lead.ID, members[0].UserID)

	mine, err := repos.Teams.FindMany(ctx, team.Query{MemberID: &dev.ID, Page: query.Page{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Meta.Total)

	require.NoError(t, repos.Teams.RemoveMember(ctx, tm.ID, dev.ID))
	_, err = repos.Teams.FindMembership(ctx, tm.ID, dev.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repos.Teams.RemoveMember(ctx, tm.ID, dev.ID), domain.ErrNotFound)
}

func TestTeamRepository_DeleteDetachesProjects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := testutil.NewRepos(testutil.NewDB(t))
	lead := repos.User(t, "lead", domain.RoleUser)

	tm, err := repos.Teams.Create(ctx, &team.Team{Name: "Core", LeaderID: lead.ID, IsActive: true})
	require.NoError(t, err)
	p, err := repos.Projects.Create(ctx, project.New(project.CreateInput{Name: "Alpha", TeamID: &tm.ID}, lead.ID))
	require.NoError(t, err)

	require.NoError(t, repos.Teams.Delete(ctx, tm.ID))

	got, err := repos.Projects.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TeamID)
	assert.ErrorIs(t, repos.Teams.Delete(ctx, tm.ID), domain.ErrNotFound)
}
