package handlers

import (
	"net/http"

	"github.com/anonto42/content-engagement/backend/internal/models"
	"github.com/anonto42/content-engagement/backend/internal/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StatsHandler handles HTTP requests for engagement counters
type StatsHandler struct {
	engagementService *services.EngagementService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(engagementService *services.EngagementService) *StatsHandler {
	return &StatsHandler{engagementService: engagementService}
}

// RegisterStatsRoutes registers stats-related routes
func (h *StatsHandler) RegisterStatsRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/stats", h.GetPostStats)
}

// GetPostStats returns the engagement counters for a post. Posts this service
// has never seen get a zeroed counter row on first read.
func (h *StatsHandler) GetPostStats(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	stats, err := h.engagementService.GetStats(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.PostStatsResponse{
		PostID:        stats.PostID,
		LikesCount:    stats.LikesCount,
		CommentsCount: stats.CommentsCount,
	})
}
