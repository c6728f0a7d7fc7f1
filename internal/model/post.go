package model

import "time"

type Post struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
	Author    User      `json:"author"`
	Group     *Group    `json:"group,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
	Author    User      `json:"author"`
}

type CreatePostRequest struct {
	Text      string `form:"text" json:"text"`
	GroupSlug string `form:"group" json:"group"`
	ImagePath string `form:"image" json:"image"`
}

type CreatePostResponse struct {
	Redirect
	ID int64 `json:"id"`
}

type UpdatePostRequest struct {
	ID        int64  `uri:"id" json:"-"`
	Text      string `form:"text" json:"text"`
	GroupSlug string `form:"group" json:"group"`
	ImagePath string `form:"image" json:"image"`
}

type UpdatePostResponse struct {
	Redirect
}

type DeletePostRequest struct {
	ID int64 `uri:"id" json:"-"`
}

type DeletePostResponse struct {
	Redirect
}

type GetPostRequest struct {
	ID int64 `uri:"id" json:"-"`
}

type GetPostResponse struct {
	Post Post `json:"post"`

	// Comments are newest first, like every other listing.
	Comments []Comment `json:"comments"`

	// IsFollowing reports whether the viewer follows the post's author.
	// Always false for anonymous viewers.
	IsFollowing bool `json:"is_following"`
}

type AddCommentRequest struct {
	PostID int64  `uri:"id" json:"-"`
	Text   string `form:"text" json:"text"`
}

type AddCommentResponse struct {
	Redirect
}
