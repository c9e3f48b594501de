package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopbay/backend/apperrors"
	"github.com/shopbay/backend/middleware"
	"github.com/shopbay/backend/models"
)

// respondError maps an error to its HTTP response. Expected domain errors
// carry their own status and message; anything else degrades to a generic
// 500 with the detail logged, never sent to the caller.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.ErrInternal
	}

	if appErr.Code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Code, gin.H{"message": appErr.Message})
}

// requireUser returns the user resolved by the auth middleware. A route
// reached without it fails closed with a 401 instead of dereferencing nil.
func requireUser(c *gin.Context) (*models.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
		return nil, false
	}
	return user, true
}
