package handler

import (
	"net/http"

	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GET /api/analytics/tasks
func (h *AnalyticsHandler) TaskStats(c *gin.Context) {
	stats, err := h.analytics.TaskStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/analytics/projects
func (h *AnalyticsHandler) ProjectStats(c *gin.Context) {
	stats, err := h.analytics.ProjectStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/analytics/users
func (h *AnalyticsHandler) UserStats(c *gin.Context) {
	stats, err := h.analytics.UserStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/analytics/created-vs-assigned
func (h *AnalyticsHandler) CreatedVsAssigned(c *gin.Context) {
	stats, err := h.analytics.TasksCreatedVsAssigned(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/analytics/quality
func (h *AnalyticsHandler) ProjectQuality(c *gin.Context) {
	stats, err := h.analytics.ProjectQuality(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
