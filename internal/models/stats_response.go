package models

import "github.com/google/uuid"

// PostStatsResponse is the engagement counter payload returned by the stats endpoint
type PostStatsResponse struct {
	PostID        uuid.UUID `json:"post_id"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
}
