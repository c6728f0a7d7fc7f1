package domain

import (
	"context"
	"errors"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowDomain interface {
	Follow(context.Context, *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(context.Context, *model.UnfollowRequest) (*model.UnfollowResponse, error)
}

type followDomain struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowDomain(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *followDomain {
	return &followDomain{followRepo: followRepo, userRepo: userRepo}
}

func (d *followDomain) Follow(
	ctx context.Context, req *model.FollowRequest,
) (*model.FollowResponse, error) {
	author, err := d.userRepo.GetByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	profile := model.RedirectTo("/profile/" + author.Name)

	// Following yourself is ignored. Following twice is ignored by the
	// repository.
	if author.ID == xcontext.RequestUserID(ctx) {
		return &model.FollowResponse{Redirect: profile}, nil
	}

	follow := &entity.Follow{
		FollowerID: xcontext.RequestUserID(ctx),
		AuthorID:   author.ID,
	}

	if err := d.followRepo.Create(ctx, follow); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowResponse{Redirect: profile}, nil
}

func (d *followDomain) Unfollow(
	ctx context.Context, req *model.UnfollowRequest,
) (*model.UnfollowResponse, error) {
	author, err := d.userRepo.GetByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	err = d.followRepo.Delete(ctx, xcontext.RequestUserID(ctx), author.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "You have not followed this user")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowResponse{
		Redirect: model.RedirectTo("/profile/" + author.Name),
	}, nil
}
