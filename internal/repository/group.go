package repository

import (
	"context"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(ctx context.Context, data *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Group, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Group, error)
	GetList(ctx context.Context) ([]entity.Group, error)
	DeleteByID(ctx context.Context, id string) error
}

type groupRepository struct{}

func NewGroupRepository() *groupRepository {
	return &groupRepository{}
}

func (r *groupRepository) Create(ctx context.Context, data *entity.Group) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var result entity.Group
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	var result entity.Group
	if err := xcontext.DB(ctx).Take(&result, "slug=?", slug).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *groupRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Group, error) {
	var result []entity.Group
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *groupRepository) GetList(ctx context.Context) ([]entity.Group, error) {
	var result []entity.Group
	if err := xcontext.DB(ctx).Order("title ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *groupRepository) DeleteByID(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Group{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
