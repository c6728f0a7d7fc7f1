package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/plume-lab/backend/internal/entity"
	"github.com/plume-lab/backend/internal/repository"
)

var fixtureTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "leo",
		Role: entity.UserRole,
	}
	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "mia",
		Role: entity.UserRole,
	}
	User3 = entity.User{
		Base: entity.Base{ID: "user3"},
		Name: "noah",
		Role: entity.UserRole,
	}
	Admin = entity.User{
		Base: entity.Base{ID: "admin"},
		Name: "root",
		Role: entity.AdminRole,
	}

	Group1 = entity.Group{
		Base:        entity.Base{ID: "group1"},
		Title:       "Cats",
		Slug:        "cats",
		Description: "Everything about cats",
	}
	Group2 = entity.Group{
		Base:  entity.Base{ID: "group2"},
		Title: "Dogs",
		Slug:  "dogs",
	}

	// Post ids grow with creation time so listings order by created_at
	// DESC, id DESC. Post2 and Post3 share a timestamp on purpose.
	Post1 = entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 101, CreatedAt: fixtureTime},
		Text:          "First post of leo",
		AuthorID:      User1.ID,
		GroupID:       sql.NullString{Valid: true, String: Group1.ID},
	}
	Post2 = entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 102, CreatedAt: fixtureTime.Add(time.Minute)},
		Text:          "Second post of leo",
		AuthorID:      User1.ID,
	}
	Post3 = entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 103, CreatedAt: fixtureTime.Add(time.Minute)},
		Text:          "First post of mia",
		AuthorID:      User2.ID,
		GroupID:       sql.NullString{Valid: true, String: Group2.ID},
	}

	Comment1 = entity.Comment{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 201, CreatedAt: fixtureTime.Add(2 * time.Minute)},
		Text:          "Nice post",
		PostID:        Post1.ID,
		AuthorID:      User2.ID,
	}

	// User2 follows User1.
	Follow1 = entity.Follow{
		FollowerID: User2.ID,
		AuthorID:   User1.ID,
	}
)

// CreateFixtureDb migrates the database carried by ctx and loads the sample
// records above.
func CreateFixtureDb(ctx context.Context) {
	if err := repository.MigrateTable(ctx); err != nil {
		panic(err)
	}

	insertUsers(ctx)
	insertGroups(ctx)
	insertPosts(ctx)
	insertComments(ctx)
	insertFollows(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, Admin} {
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertGroups(ctx context.Context) {
	groupRepo := repository.NewGroupRepository()
	for _, group := range []entity.Group{Group1, Group2} {
		if err := groupRepo.Create(ctx, &group); err != nil {
			panic(err)
		}
	}
}

func insertPosts(ctx context.Context) {
	postRepo := repository.NewPostRepository()
	for _, post := range []entity.Post{Post1, Post2, Post3} {
		if err := postRepo.Create(ctx, &post); err != nil {
			panic(err)
		}
	}
}

func insertComments(ctx context.Context) {
	commentRepo := repository.NewCommentRepository()
	for _, comment := range []entity.Comment{Comment1} {
		if err := commentRepo.Create(ctx, &comment); err != nil {
			panic(err)
		}
	}
}

func insertFollows(ctx context.Context) {
	followRepo := repository.NewFollowRepository()
	for _, follow := range []entity.Follow{Follow1} {
		if err := followRepo.Create(ctx, &follow); err != nil {
			panic(err)
		}
	}
}
