package model

type FollowRequest struct {
	Username string `uri:"username" json:"-"`
}

type FollowResponse struct {
	Redirect
}

type UnfollowRequest struct {
	Username string `uri:"username" json:"-"`
}

type UnfollowResponse struct {
	Redirect
}
