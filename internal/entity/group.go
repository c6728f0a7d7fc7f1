package entity

// Group is a named collection of posts. A post may belong to at most one
// group; deleting the group leaves its posts ungrouped.
type Group struct {
	Base
	Title       string `gorm:"size:200;not null"`
	Slug        string `gorm:"size:200;unique;not null"`
	Description string `gorm:"type:longtext"`
}
