package domain

import (
	"testing"

	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/cache"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/testutil"
	"github.com/plume-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_followDomain_Follow(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)

	followDomain := NewFollowDomain(
		repository.NewFollowRepository(),
		repository.NewUserRepository(),
	)
	feedDomain := newFeedDomain(cache.NewMemoryCache())

	// Before following, the personal feed is empty.
	feed, err := feedDomain.FollowingFeed(ctx, &model.FollowingFeedRequest{})
	require.NoError(t, err)
	require.Empty(t, feed.Page.Items)

	got, err := followDomain.Follow(ctx, &model.FollowRequest{Username: testutil.User1.Name})
	require.NoError(t, err)
	require.Equal(t, "/profile/"+testutil.User1.Name, got.Redirect.Location)

	feed, err = feedDomain.FollowingFeed(ctx, &model.FollowingFeedRequest{})
	require.NoError(t, err)
	require.Len(t, feed.Page.Items, 2)

	// Another user's feed is untouched.
	feed, err = feedDomain.FollowingFeed(
		xcontext.WithRequestUserID(ctx, testutil.User2.ID),
		&model.FollowingFeedRequest{},
	)
	require.NoError(t, err)
	require.Len(t, feed.Page.Items, 2)
	for _, post := range feed.Page.Items {
		require.Equal(t, testutil.User1.Name, post.Author.Name)
	}
}

func Test_followDomain_Follow_twice(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	followDomain := NewFollowDomain(
		repository.NewFollowRepository(),
		repository.NewUserRepository(),
	)

	// User2 already follows User1. Doing it again changes nothing.
	_, err := followDomain.Follow(ctx, &model.FollowRequest{Username: testutil.User1.Name})
	require.NoError(t, err)

	count, err := repository.NewFollowRepository().CountByAuthorID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_followDomain_Follow_self(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	followDomain := NewFollowDomain(
		repository.NewFollowRepository(),
		repository.NewUserRepository(),
	)

	got, err := followDomain.Follow(ctx, &model.FollowRequest{Username: testutil.User1.Name})
	require.NoError(t, err)
	require.Equal(t, "/profile/"+testutil.User1.Name, got.Redirect.Location)

	// No record was written.
	count, err := repository.NewFollowRepository().CountByAuthorID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_followDomain_Unfollow(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	followDomain := NewFollowDomain(
		repository.NewFollowRepository(),
		repository.NewUserRepository(),
	)
	feedDomain := newFeedDomain(cache.NewMemoryCache())

	got, err := followDomain.Unfollow(ctx, &model.UnfollowRequest{Username: testutil.User1.Name})
	require.NoError(t, err)
	require.Equal(t, "/profile/"+testutil.User1.Name, got.Redirect.Location)

	feed, err := feedDomain.FollowingFeed(ctx, &model.FollowingFeedRequest{})
	require.NoError(t, err)
	require.Empty(t, feed.Page.Items)

	// Unfollowing again is an error: there is nothing to remove.
	_, err = followDomain.Unfollow(ctx, &model.UnfollowRequest{Username: testutil.User1.Name})
	require.Equal(t, errorx.New(errorx.NotFound, "You have not followed this user"), err)

	_, err = followDomain.Unfollow(ctx, &model.UnfollowRequest{Username: "nobody"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found user"), err)
}
