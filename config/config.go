package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Session   SessionConfigs  `toml:"session"`
	Redis     RedisConfigs    `toml:"redis"`
	Feed      FeedConfigs     `toml:"feed"`
	Cache     CacheConfigs    `toml:"cache"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`

	// LoginURL is where unauthenticated requests to protected pages are
	// redirected. The login flow itself is not served by this backend.
	LoginURL string `toml:"login_url"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type FeedConfigs struct {
	// PostsPerPage is the fixed page size of every list view. It is not
	// user-controlled.
	PostsPerPage int `toml:"posts_per_page"`
}

type CacheConfigs struct {
	// TimelineTTL bounds how long a rendered timeline page is served from
	// the page cache before it is recomputed.
	TimelineTTL time.Duration `toml:"timeline_ttl"`
}

const (
	DefaultPostsPerPage = 10
	DefaultTimelineTTL  = 20 * time.Second
)

// Load reads configurations from the given toml file. A missing path returns
// the defaults so tests and local runs work without a config file.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Port: "8080",
		},
		Auth: AuthConfigs{
			TokenSecret: "token-secret",
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
			LoginURL: "/auth/login",
		},
		Session: SessionConfigs{
			Secret: "session-secret",
			Name:   "plume_session",
		},
		Feed:  FeedConfigs{PostsPerPage: DefaultPostsPerPage},
		Cache: CacheConfigs{TimelineTTL: DefaultTimelineTTL},
	}

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	if cfg.Feed.PostsPerPage <= 0 {
		cfg.Feed.PostsPerPage = DefaultPostsPerPage
	}

	if cfg.Cache.TimelineTTL <= 0 {
		cfg.Cache.TimelineTTL = DefaultTimelineTTL
	}

	return cfg, nil
}
