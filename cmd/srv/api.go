package main

import (
	"fmt"
	"net/http"

	"github.com/plume-lab/backend/internal/middleware"
	"github.com/plume-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	server.loadConfig(ct)
	server.loadLogger()
	server.loadDatabase()
	server.loadCache()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port %s", s.cfg.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.cfg, s.logger)
	s.router.Before(middleware.AllowCors())
	s.router.After(middleware.HandleRedirect())
	s.router.AddCloser(middleware.Logger())

	// Page routes. Anonymous viewers are welcome, but the follow state on
	// profiles and post details needs the identity when there is one.
	pageRouter := s.router.Branch()
	pageRouter.Before(middleware.OptionalAuth())
	{
		router.GET(pageRouter, "/", s.feedDomain.Timeline)
		router.GET(pageRouter, "/group/:slug", s.feedDomain.GroupTimeline)
		router.GET(pageRouter, "/groups", s.groupDomain.GetList)
		router.GET(pageRouter, "/profile/:username", s.feedDomain.Profile)
		router.GET(pageRouter, "/posts/:id", s.postDomain.Get)
	}

	// Mutations and the personal feed require a logged-in viewer and
	// bounce everyone else to the login page.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier().WithLoginRedirect()
	authRouter.Before(authVerifier.Middleware())
	{
		router.GET(authRouter, "/follow", s.feedDomain.FollowingFeed)
		router.POST(authRouter, "/create", s.postDomain.Create)
		router.POST(authRouter, "/posts/:id/edit", s.postDomain.Update)
		router.POST(authRouter, "/posts/:id/delete", s.postDomain.Delete)
		router.POST(authRouter, "/posts/:id/comment", s.commentDomain.Add)
		router.GET(authRouter, "/profile/:username/follow", s.followDomain.Follow)
		router.GET(authRouter, "/profile/:username/unfollow", s.followDomain.Unfollow)
	}

	// Admin API.
	adminRouter := s.router.Branch()
	adminRouter.Before(middleware.NewAuthVerifier().Middleware())
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/groups", s.groupDomain.Create)
		router.POST(adminRouter, "/groups/:slug/delete", s.groupDomain.Delete)
		router.POST(adminRouter, "/admin/clearCache", s.feedDomain.ClearTimelineCache)
	}
}
