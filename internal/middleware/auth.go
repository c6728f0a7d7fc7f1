package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/router"
	"github.com/plume-lab/backend/pkg/xcontext"
)

// AuthVerifier resolves the viewer identity from the access token (bearer
// header or cookie) or, failing that, from the session cookie written by the
// external login service.
type AuthVerifier struct {
	loginRedirect bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

// WithLoginRedirect makes unauthenticated requests 302 to the login page
// with a next parameter instead of getting a 401, matching what page routes
// expect.
func (a *AuthVerifier) WithLoginRedirect() *AuthVerifier {
	a.loginRedirect = true
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if userID := resolveUserID(ctx); userID != "" {
			return xcontext.WithRequestUserID(ctx, userID), nil
		}

		if a.loginRedirect {
			req := xcontext.HTTPRequest(ctx)
			loginURL := xcontext.Configs(ctx).Auth.LoginURL
			next := url.QueryEscape(req.URL.RequestURI())
			http.Redirect(xcontext.HTTPWriter(ctx), req, loginURL+"?next="+next, http.StatusFound)
			return nil, router.ErrResponded
		}

		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}
}

// OptionalAuth resolves the viewer identity when present but lets anonymous
// requests through, for pages that only vary by follow state.
func OptionalAuth() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if userID := resolveUserID(ctx); userID != "" {
			return xcontext.WithRequestUserID(ctx, userID), nil
		}

		return ctx, nil
	}
}

func resolveUserID(ctx context.Context) string {
	if token := getAccessToken(ctx); token != "" {
		if info, err := xcontext.TokenEngine(ctx).Verify(token); err == nil {
			return info.ID
		}
	}

	return getSessionUserID(ctx)
}

func getAccessToken(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)

	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func getSessionUserID(ctx context.Context) string {
	cfg := xcontext.Configs(ctx)
	session, err := xcontext.SessionStore(ctx).Get(xcontext.HTTPRequest(ctx), cfg.Session.Name)
	if err != nil {
		return ""
	}

	if userID, ok := session.Values["user_id"].(string); ok {
		return userID
	}

	return ""
}
