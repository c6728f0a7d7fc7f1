package domain

import (
	"context"
	"regexp"
	"unicode"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/internal/model"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

func checkGroupSlug(ctx context.Context, slug string) error {
	if len(slug) < 4 {
		return errorx.New(errorx.BadRequest, "Slug too short (at least 4 characters)")
	}

	if len(slug) > 200 {
		return errorx.New(errorx.BadRequest, "Slug too long (at most 200 characters)")
	}

	ok, err := regexp.MatchString("^[a-z0-9_]*$", slug)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot execute regex pattern: %v", err)
		return errorx.Unknown
	}

	if !ok {
		return errorx.New(errorx.BadRequest, "Slug contains invalid characters")
	}

	return nil
}

func checkGroupTitle(title string) error {
	if len(title) < 4 {
		return errorx.New(errorx.BadRequest, "Title too short (at least 4 characters)")
	}

	if len(title) > 200 {
		return errorx.New(errorx.BadRequest, "Title too long (at most 200 characters)")
	}

	return nil
}

func generateGroupSlug(title string) string {
	slug := []rune{}
	for _, c := range title {
		if isAsciiLetter(c) {
			slug = append(slug, unicode.ToLower(c))
		} else if c == ' ' {
			slug = append(slug, '_')
		}
	}

	return string(slug)
}

func isAsciiLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '_'
}

// convertPosts resolves the authors and groups of a post listing and turns
// it into client objects. The two batch lookups run concurrently.
func convertPosts(
	ctx context.Context,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	posts []entity.Post,
) ([]model.Post, error) {
	authorIDSet := map[string]struct{}{}
	groupIDSet := map[string]struct{}{}
	for i := range posts {
		authorIDSet[posts[i].AuthorID] = struct{}{}
		if posts[i].GroupID.Valid {
			groupIDSet[posts[i].GroupID.String] = struct{}{}
		}
	}

	authorIDs := make([]string, 0, len(authorIDSet))
	for id := range authorIDSet {
		authorIDs = append(authorIDs, id)
	}

	groupIDs := make([]string, 0, len(groupIDSet))
	for id := range groupIDSet {
		groupIDs = append(groupIDs, id)
	}

	var users []entity.User
	var groups []entity.Group

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if len(authorIDs) == 0 {
			return nil
		}

		var err error
		users, err = userRepo.GetByIDs(egCtx, authorIDs)
		return err
	})
	eg.Go(func() error {
		if len(groupIDs) == 0 {
			return nil
		}

		var err error
		groups, err = groupRepo.GetByIDs(egCtx, groupIDs)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	userMap := map[string]*entity.User{}
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	groupMap := map[string]*entity.Group{}
	for i := range groups {
		groupMap[groups[i].ID] = &groups[i]
	}

	result := []model.Post{}
	for i := range posts {
		var group *entity.Group
		if posts[i].GroupID.Valid {
			group = groupMap[posts[i].GroupID.String]
		}

		result = append(result, model.ConvertPost(&posts[i], userMap[posts[i].AuthorID], group))
	}

	return result, nil
}
