package service

import (
	"context"
	"fmt"
	"time"

	"taskhub/internal/model"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type BreakdownRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type TaskStats struct {
	StatusBreakdown   []BreakdownRow `json:"status_breakdown"`
	PriorityBreakdown []BreakdownRow `json:"priority_breakdown"`
	TypeBreakdown     []BreakdownRow `json:"type_breakdown"`
	OverdueTasks      int64          `json:"overdue_tasks"`
	TotalTasks        int64          `json:"total_tasks"`
	AvgTasksPerUser   float64        `json:"avg_tasks_per_user"`
}

type TopProject struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	TaskCount int64  `json:"task_count"`
}

type ProjectStats struct {
	TotalProjects      int64        `json:"total_projects"`
	AvgUsersPerProject float64      `json:"avg_users_per_project"`
	TopProjects        []TopProject `json:"top_projects"`
}

type TopUser struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	TaskCount int64  `json:"task_count"`
}

type UserStats struct {
	TotalUsers int64     `json:"total_users"`
	TopUsers   []TopUser `json:"top_users"`
}

type UserTaskCount struct {
	UserID string `json:"user_id"`
	Count  int64  `json:"count"`
}

type CreatedVsAssigned struct {
	Created  []UserTaskCount `json:"created"`
	Assigned []UserTaskCount `json:"assigned"`
}

type ProjectCompletion struct {
	ProjectID string  `json:"project_id"`
	Rate      float64 `json:"rate"`
}

type ProjectQuality struct {
	Rates       []ProjectCompletion `json:"rates"`
	AvgPriority float64             `json:"avg_priority"`
}

func (s *AnalyticsService) TaskStats(ctx context.Context) (*TaskStats, error) {
	stats := &TaskStats{}

	var err error
	if stats.StatusBreakdown, err = s.breakdown(ctx, "status"); err != nil {
		return nil, err
	}
	if stats.PriorityBreakdown, err = s.breakdown(ctx, "priority"); err != nil {
		return nil, err
	}
	if stats.TypeBreakdown, err = s.breakdown(ctx, "type"); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&model.Task{}).
		Where("deadline < ? AND status <> ?", time.Now(), model.StatusDone).
		Count(&stats.OverdueTasks).Error
	if err != nil {
		return nil, fmt.Errorf("count overdue: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&model.Task{}).Count(&stats.TotalTasks).Error; err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	var totalUsers int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Count(&totalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if totalUsers > 0 {
		stats.AvgTasksPerUser = float64(stats.TotalTasks) / float64(totalUsers)
	}
	return stats, nil
}

func (s *AnalyticsService) breakdown(ctx context.Context, column string) ([]BreakdownRow, error) {
	var rows []BreakdownRow
	err := s.db.WithContext(ctx).Model(&model.Task{}).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("breakdown by %s: %w", column, err)
	}
	return rows, nil
}

func (s *AnalyticsService) ProjectStats(ctx context.Context) (*ProjectStats, error) {
	stats := &ProjectStats{}

	if err := s.db.WithContext(ctx).Model(&model.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	var assignments int64
	if err := s.db.WithContext(ctx).Model(&model.ProjectAssignment{}).Count(&assignments).Error; err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}
	if stats.TotalProjects > 0 {
		stats.AvgUsersPerProject = float64(assignments) / float64(stats.TotalProjects)
	}

	err := s.db.WithContext(ctx).Model(&model.Project{}).
		Select("projects.id AS project_id, projects.name, COUNT(tasks.id) AS task_count").
		Joins("LEFT JOIN tasks ON tasks.project_id = projects.id").
		Group("projects.id, projects.name").
		Order("task_count DESC").
		Limit(5).
		Scan(&stats.TopProjects).Error
	if err != nil {
		return nil, fmt.Errorf("top projects: %w", err)
	}
	return stats, nil
}

func (s *AnalyticsService) UserStats(ctx context.Context) (*UserStats, error) {
	stats := &UserStats{}

	if err := s.db.WithContext(ctx).Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	err := s.db.WithContext(ctx).Model(&model.User{}).
		Select("users.id AS user_id, users.name, COUNT(tasks.id) AS task_count").
		Joins("LEFT JOIN tasks ON tasks.assigned_to_id = users.id").
		Group("users.id, users.name").
		Order("task_count DESC").
		Limit(5).
		Scan(&stats.TopUsers).Error
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}
	return stats, nil
}

func (s *AnalyticsService) TasksCreatedVsAssigned(ctx context.Context) (*CreatedVsAssigned, error) {
	out := &CreatedVsAssigned{}

	err := s.db.WithContext(ctx).Model(&model.Task{}).
		Select("created_by_id AS user_id, COUNT(*) AS count").
		Group("created_by_id").
		Scan(&out.Created).Error
	if err != nil {
		return nil, fmt.Errorf("group by creator: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&model.Task{}).
		Select("assigned_to_id AS user_id, COUNT(*) AS count").
		Where("assigned_to_id IS NOT NULL").
		Group("assigned_to_id").
		Scan(&out.Assigned).Error
	if err != nil {
		return nil, fmt.Errorf("group by assignee: %w", err)
	}
	return out, nil
}

func (s *AnalyticsService) ProjectQuality(ctx context.Context) (*ProjectQuality, error) {
	out := &ProjectQuality{}

	var rows []struct {
		ProjectID string
		Total     int64
		Done      int64
	}
	err := s.db.WithContext(ctx).Model(&model.Task{}).
		Select("project_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS done", model.StatusDone).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("completion rates: %w", err)
	}
	for _, r := range rows {
		rate := 0.0
		if r.Total > 0 {
			rate = float64(r.Done) / float64(r.Total)
		}
		out.Rates = append(out.Rates, ProjectCompletion{ProjectID: r.ProjectID, Rate: rate})
	}

	var avg struct{ Avg *float64 }
	err = s.db.WithContext(ctx).Model(&model.Task{}).
		Select("AVG(CASE priority WHEN 'LOW' THEN 1 WHEN 'MEDIUM' THEN 2 WHEN 'HIGH' THEN 3 END) AS avg").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("avg priority: %w", err)
	}
	if avg.Avg != nil {
		out.AvgPriority = *avg.Avg
	}
	return out, nil
}
