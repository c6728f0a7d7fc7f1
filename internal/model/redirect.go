package model

import "net/http"

// Redirect is embedded into responses of mutation handlers. The router's
// redirect middleware turns it into a real 302 instead of a JSON body.
type Redirect struct {
	Location string `json:"-"`
}

func (r Redirect) RedirectInfo() (int, string) {
	return http.StatusFound, r.Location
}

func RedirectTo(location string) Redirect {
	return Redirect{Location: location}
}
