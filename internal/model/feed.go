package model

import "github.com/plume-lab/backend/pkg/pagination"

// Page parameters are bound as raw strings so a malformed value degrades to
// the first page instead of failing the request.
type TimelineRequest struct {
	Page string `form:"page" json:"page"`
}

type TimelineResponse struct {
	Page pagination.Page[Post] `json:"page"`
}

type GroupTimelineRequest struct {
	Slug string `uri:"slug" json:"-"`
	Page string `form:"page" json:"page"`
}

type GroupTimelineResponse struct {
	Group Group                 `json:"group"`
	Page  pagination.Page[Post] `json:"page"`
}

type ProfileRequest struct {
	Username string `uri:"username" json:"-"`
	Page     string `form:"page" json:"page"`
}

type ProfileResponse struct {
	Profile     User                  `json:"profile"`
	IsFollowing bool                  `json:"is_following"`
	Followers   int64                 `json:"followers"`
	Page        pagination.Page[Post] `json:"page"`
}

type FollowingFeedRequest struct {
	Page string `form:"page" json:"page"`
}

type FollowingFeedResponse struct {
	Page pagination.Page[Post] `json:"page"`
}

type ClearTimelineCacheRequest struct{}

type ClearTimelineCacheResponse struct{}
