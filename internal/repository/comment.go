package repository

import (
	"context"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/pkg/xcontext"
)

type CommentRepository interface {
	Create(ctx context.Context, data *entity.Comment) error
	GetListByPostID(ctx context.Context, postID int64) ([]entity.Comment, error)
	DeleteByPostID(ctx context.Context, postID int64) error
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, data *entity.Comment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *commentRepository) GetListByPostID(ctx context.Context, postID int64) ([]entity.Comment, error) {
	var result []entity.Comment
	err := xcontext.DB(ctx).
		Where("post_id=?", postID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) DeleteByPostID(ctx context.Context, postID int64) error {
	return xcontext.DB(ctx).Delete(&entity.Comment{}, "post_id=?", postID).Error
}
