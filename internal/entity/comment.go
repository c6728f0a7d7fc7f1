package entity

type Comment struct {
	SnowFlakeBase

	Text string `gorm:"type:longtext;not null"`

	PostID int64 `gorm:"not null;index"`
	Post   Post  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	AuthorID string `gorm:"not null"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
