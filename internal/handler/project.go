package handler

import (
	"net/http"

	"taskhub/internal/logger"
	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects   *service.ProjectService
	summarizer service.Summarizer
}

func NewProjectHandler(projects *service.ProjectService, summarizer service.Summarizer) *ProjectHandler {
	return &ProjectHandler{projects: projects, summarizer: summarizer}
}

// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.projects.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("project.created", "id", p.ID, "name", p.Name, "members", len(req.UserIDs))
	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully", "project": p})
}

// PUT /api/projects/:id
func (h *ProjectHandler) Edit(c *gin.Context) {
	var req model.EditProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.projects.Edit(c.Request.Context(), c.Param("id"), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	p, err := h.projects.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Info("project.deleted", "id", p.ID, "name", p.Name)
	c.JSON(http.StatusOK, p)
}

// POST /api/projects/:id/users
func (h *ProjectHandler) AddUser(c *gin.Context) {
	var req model.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.projects.AddUser(c.Request.Context(), c.Param("id"), req.UserID, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// DELETE /api/projects/:id/users/:userId
func (h *ProjectHandler) RemoveUser(c *gin.Context) {
	if err := h.projects.RemoveUser(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/projects/summary
//
// Summary generation is best-effort enrichment: an upstream failure
// degrades to an empty string with an explicit unavailable flag instead
// of failing the request.
func (h *ProjectHandler) GenerateSummary(c *gin.Context) {
	var req model.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), req.Summary)
	if err != nil {
		logger.Warn("summary.failed", "err", err)
		c.JSON(http.StatusOK, model.SummarizeResponse{Summary: "", Unavailable: true})
		return
	}
	c.JSON(http.StatusOK, model.SummarizeResponse{Summary: summary})
}
