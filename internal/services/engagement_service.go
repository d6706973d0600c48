package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/anonto42/content-engagement/backend/internal/messaging"
	"github.com/anonto42/content-engagement/backend/internal/metrics"
	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/anonto42/content-engagement/backend/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expected business outcomes. Handlers match on these to pick status codes;
// anything else coming out of the service is a persistence failure.
var (
	ErrAlreadyLiked    = errors.New("post already liked by user")
	ErrLikeNotFound    = errors.New("like not found for user")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthorized   = errors.New("not authorized")
)

// EngagementService coordinates likes, comments, and per-post counters. Each
// operation runs as one transaction: ensure the counter row, mutate the ledger,
// adjust the counter, commit. The matching engagement event is published only
// after the commit succeeds, and a publish failure never unwinds the operation.
type EngagementService struct {
	db        *gorm.DB
	publisher messaging.EventPublisher
}

// NewEngagementService creates an EngagementService over an injected database
// handle and event publisher
func NewEngagementService(db *gorm.DB, publisher messaging.EventPublisher) *EngagementService {
	return &EngagementService{db: db, publisher: publisher}
}

// LikePost records a like for (post, user) and bumps likes_count. Returns
// ErrAlreadyLiked when the pair is already in the ledger; under a true race the
// unique index on (post_id, user_id) decides, not the prior existence check.
func (s *EngagementService) LikePost(ctx context.Context, postID, userID uuid.UUID) (*models.Like, error) {
	like := &models.Like{PostID: postID, UserID: userID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewPostgresStatsRepository(tx)
		likeRepo := repositories.NewPostgresLikeRepository(tx)

		if _, err := statsRepo.EnsureStats(postID); err != nil {
			return err
		}
		if _, err := likeRepo.GetLike(postID, userID); err == nil {
			return ErrAlreadyLiked
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := likeRepo.CreateLike(like); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}
		return statsRepo.IncrementLikes(postID, 1)
	})
	if err != nil {
		s.observe("like_post", err)
		return nil, err
	}
	s.observe("like_post", nil)

	if err := s.publisher.PublishPostLiked(ctx, postID, userID, like.CreatedAt); err != nil {
		s.logPublishFailure(messaging.RoutingKeyPostLiked, err)
	}
	return like, nil
}

// UnlikePost removes the like for (post, user) and lowers likes_count
func (s *EngagementService) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewPostgresStatsRepository(tx)
		likeRepo := repositories.NewPostgresLikeRepository(tx)

		if _, err := statsRepo.EnsureStats(postID); err != nil {
			return err
		}
		like, err := likeRepo.GetLike(postID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLikeNotFound
			}
			return err
		}
		if err := likeRepo.DeleteLike(like); err != nil {
			return err
		}
		return statsRepo.IncrementLikes(postID, -1)
	})
	if err != nil {
		s.observe("unlike_post", err)
		return err
	}
	s.observe("unlike_post", nil)

	if err := s.publisher.PublishPostUnliked(ctx, postID, userID, time.Now().UTC()); err != nil {
		s.logPublishFailure(messaging.RoutingKeyPostUnliked, err)
	}
	return nil
}

// AddComment records a comment and bumps comments_count. Content length is
// validated at the HTTP boundary before it reaches the service.
func (s *EngagementService) AddComment(ctx context.Context, postID, userID uuid.UUID, content string) (*models.Comment, error) {
	comment := &models.Comment{PostID: postID, UserID: userID, Content: content}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewPostgresStatsRepository(tx)
		commentRepo := repositories.NewPostgresCommentRepository(tx)

		if _, err := statsRepo.EnsureStats(postID); err != nil {
			return err
		}
		if err := commentRepo.CreateComment(comment); err != nil {
			return err
		}
		return statsRepo.IncrementComments(postID, 1)
	})
	if err != nil {
		s.observe("add_comment", err)
		return nil, err
	}
	s.observe("add_comment", nil)

	if err := s.publisher.PublishPostCommented(ctx, postID, comment.ID, userID, comment.Content, comment.CreatedAt); err != nil {
		s.logPublishFailure(messaging.RoutingKeyPostCommented, err)
	}
	return comment, nil
}

// ListComments returns one page of live comments for a post, oldest first
func (s *EngagementService) ListComments(ctx context.Context, postID uuid.UUID, page, pageSize int) (*models.CommentListResponse, error) {
	commentRepo := repositories.NewPostgresCommentRepository(s.db.WithContext(ctx))
	comments, total, err := commentRepo.ListCommentsByPostID(postID, page, pageSize)
	if err != nil {
		s.observe("list_comments", err)
		return nil, err
	}
	s.observe("list_comments", nil)
	return &models.CommentListResponse{
		Items:    comments,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasNext:  int64(page)*int64(pageSize) < total,
		HasPrev:  page > 1,
	}, nil
}

// DeleteComment tombstones a comment owned by the requester and lowers
// comments_count. Already-tombstoned comments report ErrCommentNotFound.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	var postID uuid.UUID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewPostgresStatsRepository(tx)
		commentRepo := repositories.NewPostgresCommentRepository(tx)

		comment, err := commentRepo.GetCommentByID(commentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}
		if comment.IsDeleted {
			return ErrCommentNotFound
		}
		if comment.UserID != userID {
			return ErrNotAuthorized
		}
		postID = comment.PostID

		if err := commentRepo.SoftDeleteComment(commentID); err != nil {
			return err
		}
		return statsRepo.IncrementComments(comment.PostID, -1)
	})
	if err != nil {
		s.observe("delete_comment", err)
		return err
	}
	s.observe("delete_comment", nil)

	if err := s.publisher.PublishCommentDeleted(ctx, postID, commentID, userID, time.Now().UTC()); err != nil {
		s.logPublishFailure(messaging.RoutingKeyCommentDeleted, err)
	}
	return nil
}

// GetStats returns the engagement counters for a post, lazily creating the
// counter row for posts this service has never been told about
func (s *EngagementService) GetStats(ctx context.Context, postID uuid.UUID) (*models.PostStats, error) {
	var stats *models.PostStats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		stats, err = repositories.NewPostgresStatsRepository(tx).EnsureStats(postID)
		return err
	})
	if err != nil {
		s.observe("get_stats", err)
		return nil, err
	}
	s.observe("get_stats", nil)
	return stats, nil
}

// HandlePostCreated initializes counters for a newly created post. Replays of
// the lifecycle event are harmless.
func (s *EngagementService) HandlePostCreated(ctx context.Context, postID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := repositories.NewPostgresStatsRepository(tx).EnsureStats(postID)
		return err
	})
	s.observe("handle_post_created", err)
	return err
}

// HandlePostDeleted cascades a post deletion: tombstone all comments, remove
// all likes, and zero the counters in one transaction. Redelivery finds
// nothing left to touch.
func (s *EngagementService) HandlePostDeleted(ctx context.Context, postID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewPostgresStatsRepository(tx)
		likeRepo := repositories.NewPostgresLikeRepository(tx)
		commentRepo := repositories.NewPostgresCommentRepository(tx)

		if _, err := statsRepo.EnsureStats(postID); err != nil {
			return err
		}
		if err := commentRepo.SoftDeleteCommentsByPostID(postID); err != nil {
			return err
		}
		if err := likeRepo.DeleteLikesByPostID(postID); err != nil {
			return err
		}
		return statsRepo.ResetStats(postID)
	})
	s.observe("handle_post_deleted", err)
	return err
}

// observe records the operation outcome on the Prometheus counter
func (s *EngagementService) observe(operation string, err error) {
	switch {
	case err == nil:
		metrics.EngagementOperations.WithLabelValues(operation, metrics.OutcomeOK).Inc()
	case errors.Is(err, ErrAlreadyLiked),
		errors.Is(err, ErrLikeNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrNotAuthorized):
		metrics.EngagementOperations.WithLabelValues(operation, metrics.OutcomeRejected).Inc()
	default:
		metrics.EngagementOperations.WithLabelValues(operation, metrics.OutcomeError).Inc()
	}
}

// logPublishFailure absorbs a post-commit publish failure. The authoritative
// state is already committed, so the caller must not see this error.
func (s *EngagementService) logPublishFailure(routingKey string, err error) {
	log.Printf("Failed to publish %s event: %v", routingKey, err)
	metrics.PublishFailures.WithLabelValues(routingKey).Inc()
}
