package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a custom type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	userIDKey     = contextKey("userID")
	authMethodKey = contextKey("authMethod")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// setUser records the authenticated principal on both the Gin and the request context,
// and tags the request logger with it.
func setUser(c *gin.Context, userID, method string) {
	c.Set(string(userIDKey), userID)
	c.Set(string(authMethodKey), method)

	ctx := c.Request.Context()
	logger := GetLoggerFromCtx(ctx).With(slog.String("user_id", userID))
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, loggerCtxKey, logger)
	c.Request = c.Request.WithContext(ctx)
}
