package repositories

import (
	"errors"
	"testing"

	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestCreateLikeEnforcesUniquePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	postID := uuid.New()
	userID := uuid.New()

	if err := repo.CreateLike(&models.Like{PostID: postID, UserID: userID}); err != nil {
		t.Fatalf("first CreateLike failed: %v", err)
	}

	err := repo.CreateLike(&models.Like{PostID: postID, UserID: userID})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey for duplicate pair, got %v", err)
	}

	// Same user on another post is fine
	if err := repo.CreateLike(&models.Like{PostID: uuid.New(), UserID: userID}); err != nil {
		t.Fatalf("CreateLike for another post failed: %v", err)
	}
}

func TestGetLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	postID := uuid.New()
	userID := uuid.New()

	if _, err := repo.GetLike(postID, userID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound before like, got %v", err)
	}

	if err := repo.CreateLike(&models.Like{PostID: postID, UserID: userID}); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}

	like, err := repo.GetLike(postID, userID)
	if err != nil {
		t.Fatalf("GetLike failed: %v", err)
	}
	if like.ID == uuid.Nil {
		t.Fatal("expected a generated like ID")
	}
	if like.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestDeleteLikesByPostID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	postID := uuid.New()

	for i := 0; i < 3; i++ {
		if err := repo.CreateLike(&models.Like{PostID: postID, UserID: uuid.New()}); err != nil {
			t.Fatalf("CreateLike failed: %v", err)
		}
	}
	otherPost := uuid.New()
	if err := repo.CreateLike(&models.Like{PostID: otherPost, UserID: uuid.New()}); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}

	if err := repo.DeleteLikesByPostID(postID); err != nil {
		t.Fatalf("DeleteLikesByPostID failed: %v", err)
	}

	count, err := repo.CountLikesByPostID(postID)
	if err != nil {
		t.Fatalf("CountLikesByPostID failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 likes after cascade, got %d", count)
	}

	remaining, err := repo.CountLikesByPostID(otherPost)
	if err != nil {
		t.Fatalf("CountLikesByPostID failed: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("cascade must not touch other posts, got %d likes", remaining)
	}
}
