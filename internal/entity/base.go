package entity

import (
	"time"
)

// Base is shared by entities identified by a uuid. Records are never
// soft-deleted; deletion is immediate and cascades through the owning
// relations.
type Base struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnowFlakeBase is shared by entities identified by a snowflake id, which
// keeps id order equal to insertion order.
type SnowFlakeBase struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
