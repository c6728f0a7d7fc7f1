package model

// AccessToken is the object carried inside the signed access token. The
// login flow issuing these tokens is an external service sharing the secret.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
