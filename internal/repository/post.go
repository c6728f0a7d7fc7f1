package repository

import (
	"context"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// GetListPostFilter narrows the post listing to one timeline view. Zero
// fields are ignored, so the empty filter is the global timeline.
type GetListPostFilter struct {
	GroupID   string
	AuthorID  string
	AuthorIDs []string
}

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	GetList(ctx context.Context, filter GetListPostFilter) ([]entity.Post, error)
	UpdateByID(ctx context.Context, id int64, data *entity.Post) error
	DeleteByID(ctx context.Context, id int64) error
	RemoveGroupReference(ctx context.Context, groupID string) error
	Count(ctx context.Context) (int64, error)
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var result entity.Post
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postRepository) GetList(ctx context.Context, filter GetListPostFilter) ([]entity.Post, error) {
	// Newest first; snowflake ids break creation-time ties in insertion
	// order, keeping the ordering stable.
	tx := xcontext.DB(ctx).Model(&entity.Post{}).
		Order("created_at DESC").
		Order("id DESC")

	if filter.GroupID != "" {
		tx.Where("group_id=?", filter.GroupID)
	}

	if filter.AuthorID != "" {
		tx.Where("author_id=?", filter.AuthorID)
	}

	if len(filter.AuthorIDs) > 0 {
		tx.Where("author_id IN (?)", filter.AuthorIDs)
	}

	var result []entity.Post
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) UpdateByID(ctx context.Context, id int64, data *entity.Post) error {
	// Explicit column selection so an empty group reference overwrites a
	// previously set one.
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=?", id).
		Select("text", "group_id", "image_path").
		Updates(data).Error
}

func (r *postRepository) DeleteByID(ctx context.Context, id int64) error {
	tx := xcontext.DB(ctx).Delete(&entity.Post{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// RemoveGroupReference ungroups every post of a deleted group. The posts
// themselves survive.
func (r *postRepository) RemoveGroupReference(ctx context.Context, groupID string) error {
	return xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("group_id=?", groupID).
		Update("group_id", gorm.Expr("NULL")).Error
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.Post{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
