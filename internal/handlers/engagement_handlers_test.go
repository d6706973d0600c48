package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/anonto42/content-engagement/backend/internal/services"
	"github.com/anonto42/content-engagement/backend/pkg/config"
	"github.com/anonto42/content-engagement/backend/validators"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopPublisher struct{}

func (nopPublisher) PublishPostLiked(ctx context.Context, postID, userID uuid.UUID, occurredAt time.Time) error {
	return nil
}
func (nopPublisher) PublishPostUnliked(ctx context.Context, postID, userID uuid.UUID, occurredAt time.Time) error {
	return nil
}
func (nopPublisher) PublishPostCommented(ctx context.Context, postID, commentID, userID uuid.UUID, content string, occurredAt time.Time) error {
	return nil
}
func (nopPublisher) PublishCommentDeleted(ctx context.Context, postID, commentID, userID uuid.UUID, occurredAt time.Time) error {
	return nil
}

func setupEnv(t *testing.T) (*echo.Echo, *services.EngagementService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Like{}, &models.Comment{}, &models.PostStats{}); err != nil {
		t.Fatalf("Failed to migrate test models: %v", err)
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	return e, services.NewEngagementService(db, nopPublisher{})
}

func newContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set(UserIDContextKey, userID)
	}
	return c, rec
}

func TestLikeEndpointStatusCodes(t *testing.T) {
	e, svc := setupEnv(t)
	h := NewLikeHandler(svc)
	postID := uuid.New()
	userID := uuid.New()

	c, rec := newContext(e, http.MethodPost, "/", "", userID)
	c.SetParamNames("post_id")
	c.SetParamValues(postID.String())
	if err := h.LikePost(c); err != nil {
		t.Fatalf("LikePost handler failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// Second like conflicts
	c, _ = newContext(e, http.MethodPost, "/", "", userID)
	c.SetParamNames("post_id")
	c.SetParamValues(postID.String())
	err := h.LikePost(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Fatalf("expected 409 conflict, got %v", err)
	}
}

func TestUnlikeWithoutLikeReturns404(t *testing.T) {
	e, svc := setupEnv(t)
	h := NewLikeHandler(svc)

	c, _ := newContext(e, http.MethodDelete, "/", "", uuid.New())
	c.SetParamNames("post_id")
	c.SetParamValues(uuid.New().String())
	err := h.UnlikePost(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	e, svc := setupEnv(t)
	cfg := &config.Config{DefaultPageSize: 20, MaxPageSize: 100}
	h := NewCommentHandler(svc, cfg)
	postID := uuid.New()

	// Empty content rejected before it reaches the service
	c, _ := newContext(e, http.MethodPost, "/", `{"content":""}`, uuid.New())
	c.SetParamNames("post_id")
	c.SetParamValues(postID.String())
	err := h.CreateComment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty content, got %v", err)
	}

	// Oversized content rejected
	long, _ := json.Marshal(map[string]string{"content": strings.Repeat("a", 2001)})
	c, _ = newContext(e, http.MethodPost, "/", string(long), uuid.New())
	c.SetParamNames("post_id")
	c.SetParamValues(postID.String())
	err = h.CreateComment(c)
	httpErr, ok = err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized content, got %v", err)
	}

	// Valid content accepted
	c, rec := newContext(e, http.MethodPost, "/", `{"content":"looks good"}`, uuid.New())
	c.SetParamNames("post_id")
	c.SetParamValues(postID.String())
	if err := h.CreateComment(c); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestDeleteCommentForbiddenForNonAuthor(t *testing.T) {
	e, svc := setupEnv(t)
	cfg := &config.Config{DefaultPageSize: 20, MaxPageSize: 100}
	h := NewCommentHandler(svc, cfg)

	comment, err := svc.AddComment(context.Background(), uuid.New(), uuid.New(), "mine")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	c, _ := newContext(e, http.MethodDelete, "/", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(comment.ID.String())
	err = h.DeleteComment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestListCommentsClampsPageSize(t *testing.T) {
	e, svc := setupEnv(t)
	cfg := &config.Config{DefaultPageSize: 20, MaxPageSize: 100}
	h := NewCommentHandler(svc, cfg)
	postID := uuid.New()

	c, rec := newContext(e, http.MethodGet, "/?page=1&page_size=500", "", uuid.Nil)
	c.SetParamNames("post_id")
	c.SetParamValues(postID.String())
	if err := h.ListComments(c); err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}

	var resp models.CommentListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PageSize != cfg.MaxPageSize {
		t.Fatalf("expected page_size clamped to %d, got %d", cfg.MaxPageSize, resp.PageSize)
	}
}

func TestGetStatsForUnknownPost(t *testing.T) {
	e, svc := setupEnv(t)
	h := NewStatsHandler(svc)

	c, rec := newContext(e, http.MethodGet, "/", "", uuid.Nil)
	c.SetParamNames("post_id")
	c.SetParamValues(uuid.New().String())
	if err := h.GetPostStats(c); err != nil {
		t.Fatalf("GetPostStats failed: %v", err)
	}

	var resp models.PostStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.LikesCount != 0 || resp.CommentsCount != 0 {
		t.Fatalf("expected zeroed stats, got %+v", resp)
	}
}

func TestInvalidPostIDRejected(t *testing.T) {
	e, svc := setupEnv(t)
	h := NewLikeHandler(svc)

	c, _ := newContext(e, http.MethodPost, "/", "", uuid.New())
	c.SetParamNames("post_id")
	c.SetParamValues("not-a-uuid")
	err := h.LikePost(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed post ID, got %v", err)
	}
}
