package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/anonto42/content-engagement/backend/internal/services"
	"github.com/anonto42/content-engagement/backend/pkg/config"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engagementService *services.EngagementService
	cfg               *config.Config
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(engagementService *services.EngagementService, cfg *config.Config) *CommentHandler {
	return &CommentHandler{engagementService: engagementService, cfg: cfg}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.ListComments)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engagementService.AddComment(c.Request().Context(), postID, userID, req.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// ListComments retrieves a page of comments for a post, oldest first
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page parameter")
		}
	}

	pageSize := h.cfg.DefaultPageSize
	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page_size parameter")
		}
		if pageSize > h.cfg.MaxPageSize {
			pageSize = h.cfg.MaxPageSize
		}
	}

	list, err := h.engagementService.ListComments(c.Request().Context(), postID, page, pageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, list)
}

// DeleteComment soft deletes a comment owned by the authenticated user
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.engagementService.DeleteComment(c.Request().Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		case errors.Is(err, services.ErrNotAuthorized):
			return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.NoContent(http.StatusNoContent)
}
