package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/models"
)

// UserContextKey is where RequireAuth stores the resolved user.
const UserContextKey = "currentUser"

// UserResolver turns a bearer token into the acting user record.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth reads the bearer token from the raw `token` header (not an
// Authorization: Bearer prefix), resolves the acting user and stores it in
// the request context. Invalid or empty tokens are rejected explicitly.
func RequireAuth(auth UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
			c.Abort()
			return
		}

		user, err := auth.ResolveUser(c.Request.Context(), token)
		if err != nil {
			var appErr *apperrors.Error
			if !errors.As(err, &appErr) {
				appErr = apperrors.ErrInternal
			}
			c.JSON(appErr.Code, gin.H{"message": appErr.Message})
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil when the
// route is not behind it.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(UserContextKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
