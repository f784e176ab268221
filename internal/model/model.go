package model

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateProjectRequest struct {
	Name    string   `json:"name" binding:"required"`
	Details string   `json:"details" binding:"required"`
	Summary string   `json:"summary"`
	UserIDs []string `json:"user_ids"`
}

type EditProjectRequest struct {
	Name    string   `json:"name" binding:"required"`
	Details string   `json:"details" binding:"required"`
	Summary *string  `json:"summary"`
	UserIDs []string `json:"user_ids"`
}

type AddUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role"`
}

// ProjectWithUsers is a project plus the ids of its assigned users.
type ProjectWithUsers struct {
	Project
	UserIDs []string `json:"user_ids"`
}

// SummarizeRequest carries the text blob to condense. The field keeps the
// name the web client sends.
type SummarizeRequest struct {
	Summary string `json:"summary" binding:"required"`
}

type SummarizeResponse struct {
	Summary     string `json:"summary"`
	Unavailable bool   `json:"summary_unavailable,omitempty"`
}

type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	StartDate    *time.Time `json:"start_date"`
	Deadline     time.Time  `json:"deadline" binding:"required"`
	Priority     string     `json:"priority" binding:"required"`
	Type         string     `json:"type" binding:"required"`
	Status       string     `json:"status"`
	Tags         []string   `json:"tags"`
	ProjectID    string     `json:"project_id" binding:"required"`
	AssignedToID *string    `json:"assigned_to_id"`
}

type UpdateTaskRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	StartDate    *time.Time `json:"start_date"`
	Deadline     time.Time  `json:"deadline" binding:"required"`
	Priority     string     `json:"priority" binding:"required"`
	Type         string     `json:"type" binding:"required"`
	Status       string     `json:"status" binding:"required"`
	Tags         []string   `json:"tags"`
	AssignedToID *string    `json:"assigned_to_id"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskListQuery struct {
	ProjectID      string `form:"project_id" binding:"required"`
	Page           int    `form:"page"`
	Limit          int    `form:"limit"`
	Type           string `form:"type"`
	Priority       string `form:"priority"`
	Status         string `form:"status"`
	Search         string `form:"search"`
	SkipPagination bool   `form:"skip_pagination"`
}

type TaskListResponse struct {
	Tasks       []Task `json:"tasks"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
}
