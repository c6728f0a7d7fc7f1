package domain

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/crypto"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GroupDomain interface {
	Create(context.Context, *model.CreateGroupRequest) (*model.CreateGroupResponse, error)
	GetList(context.Context, *model.GetGroupsRequest) (*model.GetGroupsResponse, error)
	Delete(context.Context, *model.DeleteGroupRequest) (*model.DeleteGroupResponse, error)
}

type groupDomain struct {
	groupRepo repository.GroupRepository
	postRepo  repository.PostRepository
}

func NewGroupDomain(
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
) *groupDomain {
	return &groupDomain{groupRepo: groupRepo, postRepo: postRepo}
}

func (d *groupDomain) Create(
	ctx context.Context, req *model.CreateGroupRequest,
) (*model.CreateGroupResponse, error) {
	if err := checkGroupTitle(req.Title); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug != "" {
		if err := checkGroupSlug(ctx, slug); err != nil {
			return nil, err
		}

		_, err := d.groupRepo.GetBySlug(ctx, slug)
		if err == nil {
			return nil, errorx.New(errorx.AlreadyExists, "Duplicated group slug")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		originalSlug := generateGroupSlug(req.Title)
		slug = originalSlug

		// Append a random suffix until the slug is free, widening the
		// suffix range on every collision.
		power := 2
		for {
			_, err := d.groupRepo.GetBySlug(ctx, slug)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					break
				}

				xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
				return nil, errorx.Unknown
			}

			slug = fmt.Sprintf("%s_%d", originalSlug, crypto.RandIntn(int(math.Pow10(power))))
			power++
		}

		if err := checkGroupSlug(ctx, slug); err != nil {
			return nil, err
		}
	}

	group := &entity.Group{
		Base:        entity.Base{ID: uuid.NewString()},
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
	}

	if err := d.groupRepo.Create(ctx, group); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGroupResponse{Group: model.ConvertGroup(group)}, nil
}

func (d *groupDomain) GetList(
	ctx context.Context, req *model.GetGroupsRequest,
) (*model.GetGroupsResponse, error) {
	groups, err := d.groupRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get groups: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.Group{}
	for i := range groups {
		converted = append(converted, model.ConvertGroup(&groups[i]))
	}

	return &model.GetGroupsResponse{Groups: converted}, nil
}

func (d *groupDomain) Delete(
	ctx context.Context, req *model.DeleteGroupRequest,
) (*model.DeleteGroupResponse, error) {
	group, err := d.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	// Posts survive their group; they only lose the reference.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.postRepo.RemoveGroupReference(ctx, group.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot ungroup posts: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.groupRepo.DeleteByID(ctx, group.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete group: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteGroupResponse{}, nil
}
