package entity

import "database/sql"

type Post struct {
	SnowFlakeBase

	Text string `gorm:"type:longtext;not null"`

	AuthorID string `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	GroupID sql.NullString `gorm:"index"`
	Group   Group          `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`

	// ImagePath is an opaque reference into the external media storage.
	ImagePath string
}
