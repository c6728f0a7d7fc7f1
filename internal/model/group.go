package model

type Group struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type CreateGroupRequest struct {
	Title       string `form:"title" json:"title"`
	Slug        string `form:"slug" json:"slug"`
	Description string `form:"description" json:"description"`
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type DeleteGroupRequest struct {
	Slug string `uri:"slug" json:"-"`
}

type DeleteGroupResponse struct{}

type GetGroupsRequest struct{}

type GetGroupsResponse struct {
	Groups []Group `json:"groups"`
}
