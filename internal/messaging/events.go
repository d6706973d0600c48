package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Inbound routing keys for post lifecycle events
const (
	RoutingKeyPostCreated = "post.created"
	RoutingKeyPostDeleted = "post.deleted"
)

// Outbound routing key suffixes for engagement events; the configured routing
// prefix (default "content") is prepended on publish.
const (
	RoutingKeyPostLiked      = "post.liked"
	RoutingKeyPostUnliked    = "post.unliked"
	RoutingKeyPostCommented  = "post.commented"
	RoutingKeyCommentDeleted = "comment.deleted"
)

// PostCreatedEvent is consumed when the content service creates a post
type PostCreatedEvent struct {
	PostID  uuid.UUID `json:"post_id"`
	UserID  uuid.UUID `json:"user_id"`
	Title   string    `json:"title,omitempty"`
	Content string    `json:"content,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
}

// PostDeletedEvent is consumed when the content service deletes a post
type PostDeletedEvent struct {
	PostID uuid.UUID `json:"post_id"`
	UserID uuid.UUID `json:"user_id"`
}

// PostLikedEvent is published after a like commits
type PostLikedEvent struct {
	PostID     uuid.UUID `json:"post_id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PostUnlikedEvent is published after an unlike commits
type PostUnlikedEvent struct {
	PostID     uuid.UUID `json:"post_id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PostCommentedEvent is published after a comment commits
type PostCommentedEvent struct {
	PostID     uuid.UUID `json:"post_id"`
	CommentID  uuid.UUID `json:"comment_id"`
	UserID     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CommentDeletedEvent is published after a comment deletion commits
type CommentDeletedEvent struct {
	PostID     uuid.UUID `json:"post_id"`
	CommentID  uuid.UUID `json:"comment_id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
