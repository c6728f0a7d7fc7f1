package domain

import (
	"testing"

	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGroupDomain() GroupDomain {
	return NewGroupDomain(
		repository.NewGroupRepository(),
		repository.NewPostRepository(),
	)
}

func Test_groupDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)

	groupDomain := newGroupDomain()

	got, err := groupDomain.Create(ctx, &model.CreateGroupRequest{
		Title: "Birds of Prey",
		Slug:  "birds",
	})
	require.NoError(t, err)
	require.Equal(t, "birds", got.Group.Slug)

	group, err := repository.NewGroupRepository().GetBySlug(ctx, "birds")
	require.NoError(t, err)
	require.Equal(t, "Birds of Prey", group.Title)
}

func Test_groupDomain_Create_generatedSlug(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)

	groupDomain := newGroupDomain()

	got, err := groupDomain.Create(ctx, &model.CreateGroupRequest{Title: "Night Owls"})
	require.NoError(t, err)
	require.Equal(t, "night_owls", got.Group.Slug)

	// The same title again gets a suffixed slug instead of a collision.
	got, err = groupDomain.Create(ctx, &model.CreateGroupRequest{Title: "Night Owls"})
	require.NoError(t, err)
	require.NotEqual(t, "night_owls", got.Group.Slug)
	require.Contains(t, got.Group.Slug, "night_owls_")
}

func Test_groupDomain_Create_invalid(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)

	groupDomain := newGroupDomain()

	_, err := groupDomain.Create(ctx, &model.CreateGroupRequest{Title: "ab"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Title too short (at least 4 characters)"), err)

	_, err = groupDomain.Create(ctx, &model.CreateGroupRequest{
		Title: "Valid title",
		Slug:  "Bad Slug!",
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Slug contains invalid characters"), err)

	_, err = groupDomain.Create(ctx, &model.CreateGroupRequest{
		Title: "Another cats",
		Slug:  testutil.Group1.Slug,
	})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Duplicated group slug"), err)
}

func Test_groupDomain_GetList(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	got, err := newGroupDomain().GetList(ctx, &model.GetGroupsRequest{})
	require.NoError(t, err)
	require.Len(t, got.Groups, 2)

	// Ordered by title.
	require.Equal(t, testutil.Group1.Title, got.Groups[0].Title)
	require.Equal(t, testutil.Group2.Title, got.Groups[1].Title)
}

func Test_groupDomain_Delete(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.Admin.ID)
	testutil.CreateFixtureDb(ctx)

	groupDomain := newGroupDomain()

	_, err := groupDomain.Delete(ctx, &model.DeleteGroupRequest{Slug: testutil.Group1.Slug})
	require.NoError(t, err)

	_, err = repository.NewGroupRepository().GetBySlug(ctx, testutil.Group1.Slug)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The group's post survived, just ungrouped.
	post, err := repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.False(t, post.GroupID.Valid)

	_, err = groupDomain.Delete(ctx, &model.DeleteGroupRequest{Slug: "no-such-group"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found group"), err)
}
