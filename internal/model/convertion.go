package model

import "github.com/plume-lab/backend/internal/entity"

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:   user.ID,
		Name: user.Name,
	}
}

func ConvertGroup(group *entity.Group) Group {
	if group == nil {
		return Group{}
	}

	return Group{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

func ConvertPost(post *entity.Post, author *entity.User, group *entity.Group) Post {
	result := Post{
		ID:        post.ID,
		CreatedAt: post.CreatedAt,
		Text:      post.Text,
		Author:    ConvertUser(author),
		ImagePath: post.ImagePath,
	}

	if group != nil {
		converted := ConvertGroup(group)
		result.Group = &converted
	}

	return result
}

func ConvertComment(comment *entity.Comment, author *entity.User) Comment {
	return Comment{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		Text:      comment.Text,
		Author:    ConvertUser(author),
	}
}
