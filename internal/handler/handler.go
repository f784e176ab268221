package handler

import (
	"errors"
	"net/http"

	"taskhub/internal/logger"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError is the single boundary that maps service failures to HTTP
// responses. Known classes keep their message; everything else becomes a
// generic 500 so internals never leak.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
