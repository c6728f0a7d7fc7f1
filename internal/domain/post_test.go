package domain

import (
	"fmt"
	"testing"

	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/testutil"
	"github.com/plume-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostDomain() PostDomain {
	return NewPostDomain(
		repository.NewPostRepository(),
		repository.NewCommentRepository(),
		repository.NewUserRepository(),
		repository.NewGroupRepository(),
		repository.NewFollowRepository(),
	)
}

func Test_postDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()

	got, err := postDomain.Create(ctx, &model.CreatePostRequest{
		Text:      "A brand new post",
		GroupSlug: testutil.Group2.Slug,
	})
	require.NoError(t, err)
	require.Equal(t, "/profile/"+testutil.User1.Name, got.Redirect.Location)

	post, err := repository.NewPostRepository().GetByID(ctx, got.ID)
	require.NoError(t, err)
	require.Equal(t, "A brand new post", post.Text)
	require.Equal(t, testutil.User1.ID, post.AuthorID)
	require.True(t, post.GroupID.Valid)
	require.Equal(t, testutil.Group2.ID, post.GroupID.String)
}

func Test_postDomain_Create_invalid(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()

	_, err := postDomain.Create(ctx, &model.CreatePostRequest{Text: "   "})
	require.Equal(t, errorx.New(errorx.BadRequest, "Not allow an empty post text"), err)

	_, err = postDomain.Create(ctx, &model.CreatePostRequest{
		Text:      "Grouped post",
		GroupSlug: "no-such-group",
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found group"), err)
}

func Test_postDomain_Update(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()
	postRepo := repository.NewPostRepository()

	got, err := postDomain.Update(ctx, &model.UpdatePostRequest{
		ID:   testutil.Post1.ID,
		Text: "Edited text",
	})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("/posts/%d", testutil.Post1.ID), got.Redirect.Location)

	post, err := postRepo.GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Equal(t, "Edited text", post.Text)

	// The edit also dropped the group reference.
	require.False(t, post.GroupID.Valid)
}

func Test_postDomain_Update_notAuthor(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()

	// Someone else's post: no error, no change, back to the detail page.
	got, err := postDomain.Update(ctx, &model.UpdatePostRequest{
		ID:   testutil.Post1.ID,
		Text: "Hijacked",
	})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("/posts/%d", testutil.Post1.ID), got.Redirect.Location)

	post, err := repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.Text, post.Text)

	_, err = postDomain.Update(ctx, &model.UpdatePostRequest{ID: 999999, Text: "x"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found post"), err)
}

func Test_postDomain_Delete(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()

	got, err := postDomain.Delete(ctx, &model.DeletePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, "/profile/"+testutil.User1.Name, got.Redirect.Location)

	_, err = repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Comments went with the post.
	comments, err := repository.NewCommentRepository().GetListByPostID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}

func Test_postDomain_Delete_notAuthor(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()

	got, err := postDomain.Delete(ctx, &model.DeletePostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("/posts/%d", testutil.Post1.ID), got.Redirect.Location)

	_, err = repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
}

func Test_postDomain_Get(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	postDomain := newPostDomain()

	got, err := postDomain.Get(ctx, &model.GetPostRequest{ID: testutil.Post1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Post1.Text, got.Post.Text)
	require.Equal(t, testutil.User1.Name, got.Post.Author.Name)
	require.NotNil(t, got.Post.Group)
	require.Equal(t, testutil.Group1.Slug, got.Post.Group.Slug)

	require.Len(t, got.Comments, 1)
	require.Equal(t, testutil.Comment1.Text, got.Comments[0].Text)
	require.Equal(t, testutil.User2.Name, got.Comments[0].Author.Name)

	// User2 follows the author.
	require.True(t, got.IsFollowing)

	// Anonymous viewers never see a follow state.
	got, err = postDomain.Get(
		xcontext.WithRequestUserID(ctx, ""),
		&model.GetPostRequest{ID: testutil.Post1.ID},
	)
	require.NoError(t, err)
	require.False(t, got.IsFollowing)

	_, err = postDomain.Get(ctx, &model.GetPostRequest{ID: 999999})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found post"), err)
}
