package repositories

import (
	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository defines the interface for the per-post counter store
type StatsRepository interface {
	EnsureStats(postID uuid.UUID) (*models.PostStats, error)
	IncrementLikes(postID uuid.UUID, delta int) error
	IncrementComments(postID uuid.UUID, delta int) error
	ResetStats(postID uuid.UUID) error
}

// PostgresStatsRepository implements StatsRepository for PostgreSQL
type PostgresStatsRepository struct {
	db *gorm.DB
}

// NewPostgresStatsRepository creates a new PostgresStatsRepository
func NewPostgresStatsRepository(db *gorm.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// EnsureStats idempotently creates a zeroed counter row for the post and
// returns the current row. Insert-on-conflict-do-nothing keeps this race-safe
// when two transactions ensure the same post at once.
func (r *PostgresStatsRepository) EnsureStats(postID uuid.UUID) (*models.PostStats, error) {
	stats := models.PostStats{PostID: postID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&stats).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("post_id = ?", postID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// IncrementLikes applies a signed delta to likes_count, floored at zero. The
// counter must never be adjusted by read-modify-write in application memory;
// the single UPDATE serializes concurrent increments under row locking.
func (r *PostgresStatsRepository) IncrementLikes(postID uuid.UUID, delta int) error {
	return r.db.Model(&models.PostStats{}).
		Where("post_id = ?", postID).
		Update("likes_count", gorm.Expr(
			"CASE WHEN likes_count + ? < 0 THEN 0 ELSE likes_count + ? END", delta, delta,
		)).Error
}

// IncrementComments applies a signed delta to comments_count, floored at zero
func (r *PostgresStatsRepository) IncrementComments(postID uuid.UUID, delta int) error {
	return r.db.Model(&models.PostStats{}).
		Where("post_id = ?", postID).
		Update("comments_count", gorm.Expr(
			"CASE WHEN comments_count + ? < 0 THEN 0 ELSE comments_count + ? END", delta, delta,
		)).Error
}

// ResetStats forces both counters back to zero (post-deletion cascade)
func (r *PostgresStatsRepository) ResetStats(postID uuid.UUID) error {
	return r.db.Model(&models.PostStats{}).
		Where("post_id = ?", postID).
		Updates(map[string]interface{}{"likes_count": 0, "comments_count": 0}).Error
}
