package testutil

import (
	"testing"

	"github.com/plume-lab/backend/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestNewMockContextHasSchema(t *testing.T) {
	// A fresh mock context is queryable without loading fixtures first.
	ctx := NewMockContextWithUserID(User3.ID)

	authorIDs, err := repository.NewFollowRepository().GetAuthorIDsByFollowerID(ctx, User3.ID)
	require.NoError(t, err)
	require.Empty(t, authorIDs)

	posts, err := repository.NewPostRepository().GetList(ctx, repository.GetListPostFilter{})
	require.NoError(t, err)
	require.Empty(t, posts)
}
