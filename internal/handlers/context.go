package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is where the JWT middleware stores the authenticated user ID
const UserIDContextKey = "userID"

// CurrentUserID extracts the authenticated user's UUID from the echo context
func CurrentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing authenticated user")
	}
	return userID, nil
}
