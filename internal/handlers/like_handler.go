package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/content-engagement/backend/internal/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagementService *services.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagementService *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.LikePost)
	g.DELETE("/posts/:post_id/like", h.UnlikePost)
}

// LikePost handles liking a post for the authenticated user
func (h *LikeHandler) LikePost(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	like, err := h.engagementService.LikePost(c.Request().Context(), postID, userID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyLiked) {
			return echo.NewHTTPError(http.StatusConflict, "Post already liked by this user")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, like)
}

// UnlikePost handles removing the authenticated user's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID, err := CurrentUserID(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.engagementService.UnlikePost(c.Request().Context(), postID, userID); err != nil {
		if errors.Is(err, services.ErrLikeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Like not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
