package repository

import (
	"context"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	// Create is create-if-absent: following an already followed author is
	// not an error.
	Create(ctx context.Context, data *entity.Follow) error
	Get(ctx context.Context, followerID, authorID string) (*entity.Follow, error)
	// Delete is strict: removing a follow that does not exist returns
	// gorm.ErrRecordNotFound.
	Delete(ctx context.Context, followerID, authorID string) error
	GetAuthorIDsByFollowerID(ctx context.Context, followerID string) ([]string, error)
	CountByAuthorID(ctx context.Context, authorID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Create(ctx context.Context, data *entity.Follow) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(data).Error
}

func (r *followRepository) Get(ctx context.Context, followerID, authorID string) (*entity.Follow, error) {
	var result entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_id=? AND author_id=?", followerID, authorID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, authorID string) error {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND author_id=?", followerID, authorID).
		Delete(&entity.Follow{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *followRepository) GetAuthorIDsByFollowerID(ctx context.Context, followerID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("follower_id=?", followerID).
		Pluck("author_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) CountByAuthorID(ctx context.Context, authorID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("author_id=?", authorID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
