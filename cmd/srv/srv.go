package main

import (
	"context"
	"net/http"

	"github.com/plume-lab/backend/config"
	"github.com/plume-lab/backend/internal/domain"
	"github.com/plume-lab/backend/internal/repository"
	"github.com/plume-lab/backend/pkg/cache"
	"github.com/plume-lab/backend/pkg/logger"
	"github.com/plume-lab/backend/pkg/router"
	"github.com/plume-lab/backend/pkg/xcontext"
	"github.com/plume-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	cfg    config.Configs
	logger logger.Logger
	db     *gorm.DB

	pageCache cache.Cache

	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository

	feedDomain    domain.FeedDomain
	postDomain    domain.PostDomain
	commentDomain domain.CommentDomain
	followDomain  domain.FollowDomain
	groupDomain   domain.GroupDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}

	s.cfg = cfg
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.cfg.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.cfg.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

// loadCache picks redis when an address is configured and falls back to the
// in-process cache otherwise, so a single-node deployment needs no redis.
func (s *srv) loadCache() {
	if s.cfg.Redis.Addr == "" {
		s.logger.Infof("No redis address configured, using in-memory page cache")
		s.pageCache = cache.NewMemoryCache()
		return
	}

	ctx := xcontext.WithConfigs(context.Background(), s.cfg)
	redisClient, err := xredis.NewClient(ctx)
	if err != nil {
		panic(err)
	}

	s.pageCache = cache.NewRedisCache(redisClient)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.groupRepo = repository.NewGroupRepository()
	s.postRepo = repository.NewPostRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.followRepo = repository.NewFollowRepository()
}

func (s *srv) loadDomains() {
	s.feedDomain = domain.NewFeedDomain(
		s.postRepo, s.userRepo, s.groupRepo, s.followRepo, s.pageCache)
	s.postDomain = domain.NewPostDomain(
		s.postRepo, s.commentRepo, s.userRepo, s.groupRepo, s.followRepo)
	s.commentDomain = domain.NewCommentDomain(s.commentRepo, s.postRepo)
	s.followDomain = domain.NewFollowDomain(s.followRepo, s.userRepo)
	s.groupDomain = domain.NewGroupDomain(s.groupRepo, s.postRepo)
}
