package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStats holds the maintained engagement counters for a post. Counters are
// adjusted incrementally inside the same transaction as the ledger write, never
// recomputed from ledger rows on read.
type PostStats struct {
	PostID        uuid.UUID `json:"post_id" gorm:"type:uuid;primaryKey"`
	LikesCount    int       `json:"likes_count" gorm:"not null;default:0"`
	CommentsCount int       `json:"comments_count" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the table name from the original content schema
func (PostStats) TableName() string {
	return "post_content_stats"
}
