package service

import (
	"context"
	"fmt"

	"taskhub/internal/model"

	"gorm.io/gorm"
)

const defaultRole = "member"

type ProjectService struct{ db *gorm.DB }

func NewProjectService(db *gorm.DB) *ProjectService { return &ProjectService{db: db} }

// List returns the projects the user is assigned to, newest first, each
// with the full assigned user-id list.
func (s *ProjectService) List(ctx context.Context, userID string) ([]model.ProjectWithUsers, error) {
	sub := s.db.Model(&model.ProjectAssignment{}).
		Select("project_id").
		Where("user_id = ?", userID)

	var projects []model.Project
	err := s.db.WithContext(ctx).
		Preload("Assignments").
		Where("id IN (?)", sub).
		Order("created_at DESC, id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	out := make([]model.ProjectWithUsers, 0, len(projects))
	for _, p := range projects {
		userIDs := make([]string, 0, len(p.Assignments))
		for _, a := range p.Assignments {
			userIDs = append(userIDs, a.UserID)
		}
		out = append(out, model.ProjectWithUsers{Project: p, UserIDs: userIDs})
	}
	return out, nil
}

// Create inserts the project and its member assignments in one
// transaction so a failed assignment insert cannot orphan the project.
func (s *ProjectService) Create(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	p := model.Project{Name: req.Name, Details: req.Details, Summary: req.Summary}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
		assignments := buildAssignments(p.ID, dedupe(req.UserIDs))
		if len(assignments) == 0 {
			return nil
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return fmt.Errorf("insert assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Edit updates the project fields and reconciles the assignment set as an
// add/remove diff. Members present both before and after keep their
// original AssignedAt.
func (s *ProjectService) Edit(ctx context.Context, id string, req model.EditProjectRequest) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Project
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return fmt.Errorf("lookup project: %w", err)
		}

		updates := map[string]interface{}{"name": req.Name, "details": req.Details}
		if req.Summary != nil {
			updates["summary"] = *req.Summary
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return fmt.Errorf("update project: %w", err)
		}

		var existing []model.ProjectAssignment
		if err := tx.Where("project_id = ?", id).Find(&existing).Error; err != nil {
			return fmt.Errorf("query assignments: %w", err)
		}

		desired := make(map[string]bool, len(req.UserIDs))
		for _, uid := range dedupe(req.UserIDs) {
			desired[uid] = true
		}
		current := make(map[string]bool, len(existing))
		var removed []string
		for _, a := range existing {
			current[a.UserID] = true
			if !desired[a.UserID] {
				removed = append(removed, a.UserID)
			}
		}
		var added []string
		for uid := range desired {
			if !current[uid] {
				added = append(added, uid)
			}
		}

		if len(removed) > 0 {
			if err := tx.Where("project_id = ? AND user_id IN ?", id, removed).
				Delete(&model.ProjectAssignment{}).Error; err != nil {
				return fmt.Errorf("remove assignments: %w", err)
			}
		}
		if len(added) > 0 {
			assignments := buildAssignments(id, added)
			if err := tx.Create(&assignments).Error; err != nil {
				return fmt.Errorf("add assignments: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the assignments and the project row together.
func (s *ProjectService) Delete(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return fmt.Errorf("lookup project: %w", err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectAssignment{}).Error; err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		if err := tx.Delete(&model.Project{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) AddUser(ctx context.Context, projectID, userID, role string) (*model.ProjectAssignment, error) {
	if role == "" {
		role = defaultRole
	}
	a := model.ProjectAssignment{ProjectID: projectID, UserID: userID, Role: role}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}
	return &a, nil
}

func (s *ProjectService) RemoveUser(ctx context.Context, projectID, userID string) error {
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectAssignment{}).Error
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

func buildAssignments(projectID string, userIDs []string) []model.ProjectAssignment {
	assignments := make([]model.ProjectAssignment, 0, len(userIDs))
	for _, uid := range userIDs {
		assignments = append(assignments, model.ProjectAssignment{
			ProjectID: projectID,
			UserID:    uid,
			Role:      defaultRole,
		})
	}
	return assignments
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
