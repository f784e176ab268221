package handler

import (
	"fmt"
	"net/http"

	"taskhub/internal/logger"
	"taskhub/internal/model"
	"taskhub/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// GET /api/tasks?project_id=...&page=...&limit=...&type=...&priority=...&status=...&search=...&skip_pagination=...
func (h *TaskHandler) List(c *gin.Context) {
	var q model.TaskListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	query, err := resolveFilters(q)
	if err != nil {
		writeError(c, err)
		return
	}

	page, err := h.tasks.List(c.Request.Context(), currentUserID(c), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// resolveFilters turns wire-level filter values into optional constraints,
// treating the ALL sentinel as absent.
func resolveFilters(q model.TaskListQuery) (service.TaskQuery, error) {
	status, err := model.StatusFilter(q.Status)
	if err != nil {
		return service.TaskQuery{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	priority, err := model.PriorityFilter(q.Priority)
	if err != nil {
		return service.TaskQuery{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	taskType, err := model.TypeFilter(q.Type)
	if err != nil {
		return service.TaskQuery{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return service.TaskQuery{
		ProjectID:      q.ProjectID,
		Status:         status,
		Priority:       priority,
		Type:           taskType,
		Search:         q.Search,
		Page:           q.Page,
		Limit:          q.Limit,
		SkipPagination: q.SkipPagination,
	}, nil
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.tasks.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("task.created", "id", t.ID, "project", t.ProjectID, "title", t.Title)
	c.JSON(http.StatusCreated, t)
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.tasks.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.tasks.UpdateStatus(c.Request.Context(), c.Param("id"), model.TaskStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
