package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/idutil"
	"github.com/plume-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Add(context.Context, *model.AddCommentRequest) (*model.AddCommentResponse, error)
}

type commentDomain struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *commentDomain {
	return &commentDomain{commentRepo: commentRepo, postRepo: postRepo}
}

func (d *commentDomain) Add(
	ctx context.Context, req *model.AddCommentRequest,
) (*model.AddCommentResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	detail := model.RedirectTo(fmt.Sprintf("/posts/%d", post.ID))

	// A blank comment is dropped, not rejected. The client lands back on
	// the detail page either way.
	if strings.TrimSpace(req.Text) == "" {
		return &model.AddCommentResponse{Redirect: detail}, nil
	}

	comment := &entity.Comment{
		SnowFlakeBase: entity.SnowFlakeBase{ID: idutil.New()},
		Text:          req.Text,
		PostID:        post.ID,
		AuthorID:      xcontext.RequestUserID(ctx),
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddCommentResponse{Redirect: detail}, nil
}
