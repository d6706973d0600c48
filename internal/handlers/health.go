package handlers

import (
	"net/http"

	"github.com/anonto42/content-engagement/backend/internal/messaging"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service and broker status
type HealthHandler struct {
	broker *messaging.Broker
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(broker *messaging.Broker) *HealthHandler {
	return &HealthHandler{broker: broker}
}

// HealthCheck reports liveness plus the broker connection state
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	brokerStatus := "disconnected"
	if h.broker != nil && h.broker.State() == messaging.BrokerConnected {
		brokerStatus = "connected"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "content-engagement",
		"broker":  brokerStatus,
	})
}
