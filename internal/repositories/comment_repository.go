package repositories

import (
	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment ledger operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uuid.UUID) (*models.Comment, error)
	ListCommentsByPostID(postID uuid.UUID, page, pageSize int) ([]models.Comment, int64, error)
	SoftDeleteComment(id uuid.UUID) error
	SoftDeleteCommentsByPostID(postID uuid.UUID) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID, tombstoned or not
func (r *PostgresCommentRepository) GetCommentByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListCommentsByPostID returns one page of non-deleted comments for a post in
// creation order, plus the total count computed at read time.
func (r *PostgresCommentRepository) ListCommentsByPostID(postID uuid.UUID, page, pageSize int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	if err := r.db.Model(&models.Comment{}).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("created_at ASC").Offset(offset).Limit(pageSize).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// SoftDeleteComment tombstones a single comment
func (r *PostgresCommentRepository) SoftDeleteComment(id uuid.UUID) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// SoftDeleteCommentsByPostID tombstones every comment for a post (post-deletion cascade)
func (r *PostgresCommentRepository) SoftDeleteCommentsByPostID(postID uuid.UUID) error {
	return r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Update("is_deleted", true).Error
}
