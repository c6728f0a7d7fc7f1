package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/cache"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/pagination"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const timelineCacheKeyPattern = "timeline:*"

func timelineCacheKey(page int) string {
	return fmt.Sprintf("timeline:%d", page)
}

type FeedDomain interface {
	Timeline(context.Context, *model.TimelineRequest) (*model.TimelineResponse, error)
	GroupTimeline(context.Context, *model.GroupTimelineRequest) (*model.GroupTimelineResponse, error)
	Profile(context.Context, *model.ProfileRequest) (*model.ProfileResponse, error)
	FollowingFeed(context.Context, *model.FollowingFeedRequest) (*model.FollowingFeedResponse, error)
	ClearTimelineCache(context.Context, *model.ClearTimelineCacheRequest) (*model.ClearTimelineCacheResponse, error)
}

type feedDomain struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	pageCache  cache.Cache
}

func NewFeedDomain(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	pageCache cache.Cache,
) *feedDomain {
	return &feedDomain{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		pageCache:  pageCache,
	}
}

func (d *feedDomain) Timeline(
	ctx context.Context, req *model.TimelineRequest,
) (*model.TimelineResponse, error) {
	page := pagination.Number(req.Page)

	// The timeline is served from the page cache within the TTL window,
	// regardless of intervening writes. Two requests racing on a fill both
	// compute from the same data, so the overwrite is benign.
	var resp model.TimelineResponse
	err := d.pageCache.Get(ctx, timelineCacheKey(page), &resp)
	if err == nil {
		return &resp, nil
	}

	if !errors.Is(err, cache.ErrNotExist) {
		xcontext.Logger(ctx).Warnf("Cannot read timeline cache: %v", err)
	}

	posts, err := d.postRepo.GetList(ctx, repository.GetListPostFilter{})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := convertPosts(ctx, d.userRepo, d.groupRepo, posts)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot convert posts: %v", err)
		return nil, errorx.Unknown
	}

	resp = model.TimelineResponse{
		Page: pagination.Paginate(converted, xcontext.Configs(ctx).Feed.PostsPerPage, page),
	}

	ttl := xcontext.Configs(ctx).Cache.TimelineTTL
	if err := d.pageCache.Set(ctx, timelineCacheKey(page), resp, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot write timeline cache: %v", err)
	}

	return &resp, nil
}

func (d *feedDomain) GroupTimeline(
	ctx context.Context, req *model.GroupTimelineRequest,
) (*model.GroupTimelineResponse, error) {
	group, err := d.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	posts, err := d.postRepo.GetList(ctx, repository.GetListPostFilter{GroupID: group.ID})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := convertPosts(ctx, d.userRepo, d.groupRepo, posts)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot convert posts: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GroupTimelineResponse{
		Group: model.ConvertGroup(group),
		Page: pagination.Paginate(
			converted, xcontext.Configs(ctx).Feed.PostsPerPage, pagination.Number(req.Page)),
	}, nil
}

func (d *feedDomain) Profile(
	ctx context.Context, req *model.ProfileRequest,
) (*model.ProfileResponse, error) {
	user, err := d.userRepo.GetByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	posts, err := d.postRepo.GetList(ctx, repository.GetListPostFilter{AuthorID: user.ID})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := convertPosts(ctx, d.userRepo, d.groupRepo, posts)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot convert posts: %v", err)
		return nil, errorx.Unknown
	}

	isFollowing := false
	if viewerID := xcontext.RequestUserID(ctx); viewerID != "" {
		_, err := d.followRepo.Get(ctx, viewerID, user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get follow: %v", err)
			return nil, errorx.Unknown
		}

		isFollowing = err == nil
	}

	followers, err := d.followRepo.CountByAuthorID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ProfileResponse{
		Profile:     model.ConvertUser(user),
		IsFollowing: isFollowing,
		Followers:   followers,
		Page: pagination.Paginate(
			converted, xcontext.Configs(ctx).Feed.PostsPerPage, pagination.Number(req.Page)),
	}, nil
}

func (d *feedDomain) FollowingFeed(
	ctx context.Context, req *model.FollowingFeedRequest,
) (*model.FollowingFeedResponse, error) {
	viewerID := xcontext.RequestUserID(ctx)
	if viewerID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	authorIDs, err := d.followRepo.GetAuthorIDsByFollowerID(ctx, viewerID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followed authors: %v", err)
		return nil, errorx.Unknown
	}

	pageSize := xcontext.Configs(ctx).Feed.PostsPerPage

	// Following nobody is not an error, just an empty feed.
	if len(authorIDs) == 0 {
		return &model.FollowingFeedResponse{
			Page: pagination.Paginate([]model.Post{}, pageSize, pagination.Number(req.Page)),
		}, nil
	}

	posts, err := d.postRepo.GetList(ctx, repository.GetListPostFilter{AuthorIDs: authorIDs})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := convertPosts(ctx, d.userRepo, d.groupRepo, posts)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot convert posts: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowingFeedResponse{
		Page: pagination.Paginate(converted, pageSize, pagination.Number(req.Page)),
	}, nil
}

func (d *feedDomain) ClearTimelineCache(
	ctx context.Context, req *model.ClearTimelineCacheRequest,
) (*model.ClearTimelineCacheResponse, error) {
	if err := d.pageCache.Clear(ctx, timelineCacheKeyPattern); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear timeline cache: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ClearTimelineCacheResponse{}, nil
}
