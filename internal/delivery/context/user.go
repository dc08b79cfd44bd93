package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key of the authenticated user.
const KeyUserID = "user_id"

// SetUserID stores the authenticated user on the echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(KeyUserID, userID)
}

// GetUserID returns the authenticated user set by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(KeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
