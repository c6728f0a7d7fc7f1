package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/idutil"
	"github.com/plume-lab/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type PostDomain interface {
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	Update(context.Context, *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	Delete(context.Context, *model.DeletePostRequest) (*model.DeletePostResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
}

type postDomain struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	followRepo  repository.FollowRepository
}

func NewPostDomain(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
) *postDomain {
	return &postDomain{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		followRepo:  followRepo,
	}
}

func (d *postDomain) resolveGroupID(ctx context.Context, slug string) (sql.NullString, error) {
	if slug == "" {
		return sql.NullString{}, nil
	}

	group, err := d.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sql.NullString{}, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return sql.NullString{}, errorx.Unknown
	}

	return sql.NullString{Valid: true, String: group.ID}, nil
}

func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty post text")
	}

	groupID, err := d.resolveGroupID(ctx, req.GroupSlug)
	if err != nil {
		return nil, err
	}

	author, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get author: %v", err)
		return nil, errorx.Unknown
	}

	post := &entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{ID: idutil.New()},
		Text:          req.Text,
		AuthorID:      author.ID,
		GroupID:       groupID,
		ImagePath:     req.ImagePath,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{
		Redirect: model.RedirectTo("/profile/" + author.Name),
		ID:       post.ID,
	}, nil
}

func (d *postDomain) Update(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	detail := model.RedirectTo(fmt.Sprintf("/posts/%d", post.ID))

	// Only the author can edit. Everyone else is sent back to the detail
	// page without an error.
	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return &model.UpdatePostResponse{Redirect: detail}, nil
	}

	if strings.TrimSpace(req.Text) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty post text")
	}

	groupID, err := d.resolveGroupID(ctx, req.GroupSlug)
	if err != nil {
		return nil, err
	}

	err = d.postRepo.UpdateByID(ctx, post.ID, &entity.Post{
		Text:      req.Text,
		GroupID:   groupID,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePostResponse{Redirect: detail}, nil
}

func (d *postDomain) Delete(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return &model.DeletePostResponse{
			Redirect: model.RedirectTo(fmt.Sprintf("/posts/%d", post.ID)),
		}, nil
	}

	author, err := d.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get author: %v", err)
		return nil, errorx.Unknown
	}

	// Comments go with the post in a single transaction.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.commentRepo.DeleteByPostID(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comments: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.postRepo.DeleteByID(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeletePostResponse{
		Redirect: model.RedirectTo("/profile/" + author.Name),
	}, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	var author *entity.User
	var group *entity.Group
	var comments []entity.Comment

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		author, err = d.userRepo.GetByID(egCtx, post.AuthorID)
		return err
	})
	eg.Go(func() error {
		if !post.GroupID.Valid {
			return nil
		}

		var err error
		group, err = d.groupRepo.GetByID(egCtx, post.GroupID.String)
		return err
	})
	eg.Go(func() error {
		var err error
		comments, err = d.commentRepo.GetListByPostID(egCtx, post.ID)
		return err
	})

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load post detail: %v", err)
		return nil, errorx.Unknown
	}

	commenterIDSet := map[string]struct{}{}
	for i := range comments {
		commenterIDSet[comments[i].AuthorID] = struct{}{}
	}

	commenterIDs := make([]string, 0, len(commenterIDSet))
	for id := range commenterIDSet {
		commenterIDs = append(commenterIDs, id)
	}

	commenterMap := map[string]*entity.User{}
	if len(commenterIDs) > 0 {
		commenters, err := d.userRepo.GetByIDs(ctx, commenterIDs)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get commenters: %v", err)
			return nil, errorx.Unknown
		}

		for i := range commenters {
			commenterMap[commenters[i].ID] = &commenters[i]
		}
	}

	convertedComments := []model.Comment{}
	for i := range comments {
		convertedComments = append(
			convertedComments,
			model.ConvertComment(&comments[i], commenterMap[comments[i].AuthorID]),
		)
	}

	isFollowing := false
	if viewerID := xcontext.RequestUserID(ctx); viewerID != "" {
		_, err := d.followRepo.Get(ctx, viewerID, post.AuthorID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get follow: %v", err)
			return nil, errorx.Unknown
		}

		isFollowing = err == nil
	}

	return &model.GetPostResponse{
		Post:        model.ConvertPost(post, author, group),
		Comments:    convertedComments,
		IsFollowing: isFollowing,
	}, nil
}
