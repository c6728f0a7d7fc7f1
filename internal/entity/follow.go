package entity

import "time"

// Follow is a directed relationship: the follower receives the author's
// posts in their personal feed. The composite primary key makes the pair
// unique at the store level. No soft-delete column: unfollow is a hard
// delete, so a later re-follow cannot collide with a tombstone.
type Follow struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`

	AuthorID string `gorm:"primaryKey"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
