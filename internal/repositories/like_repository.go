package repositories

import (
	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like ledger operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	GetLike(postID, userID uuid.UUID) (*models.Like, error)
	DeleteLike(like *models.Like) error
	DeleteLikesByPostID(postID uuid.UUID) error
	CountLikesByPostID(postID uuid.UUID) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like. The composite unique index on (post_id, user_id)
// is the final arbiter against duplicate likes; the caller must translate
// gorm.ErrDuplicatedKey into its already-liked outcome.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// GetLike retrieves the like for a (post, user) pair, if any
func (r *PostgresLikeRepository) GetLike(postID, userID uuid.UUID) (*models.Like, error) {
	var like models.Like
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// DeleteLike removes a single like row
func (r *PostgresLikeRepository) DeleteLike(like *models.Like) error {
	return r.db.Delete(like).Error
}

// DeleteLikesByPostID hard-deletes every like for a post (post-deletion cascade)
func (r *PostgresLikeRepository) DeleteLikesByPostID(postID uuid.UUID) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}

// CountLikesByPostID counts the like rows for a post
func (r *PostgresLikeRepository) CountLikesByPostID(postID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
