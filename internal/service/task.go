package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"taskhub/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

type TaskService struct{ db *gorm.DB }

func NewTaskService(db *gorm.DB) *TaskService { return &TaskService{db: db} }

// TaskQuery is the resolved filter set for a task listing. Nil enum
// fields mean "no constraint" (the wire-level ALL sentinel is resolved
// before this point).
type TaskQuery struct {
	ProjectID      string
	Status         *model.TaskStatus
	Priority       *model.TaskPriority
	Type           *model.TaskType
	Search         string
	Page           int
	Limit          int
	SkipPagination bool
}

// scoped builds a fresh query carrying every filter plus the ownership
// scope. A new statement per call keeps the concurrent count below safe.
func (s *TaskService) scoped(ctx context.Context, userID string, q TaskQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ?", q.ProjectID).
		Where("assigned_to_id = ? OR created_by_id = ?", userID, userID)

	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}
	if q.Priority != nil {
		tx = tx.Where("priority = ?", *q.Priority)
	}
	if q.Type != nil {
		tx = tx.Where("type = ?", *q.Type)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		// Tags are stored as a JSON array; matching the quoted element
		// inside the serialized text is an exact-element check.
		tagPattern := `%"` + search + `"%`
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR CAST(tags AS CHAR) LIKE ?",
			like, like, tagPattern)
	}
	return tx
}

// List returns one page of the caller's tasks in a project, newest first.
// With SkipPagination set it returns every matching task in a single page.
func (s *TaskService) List(ctx context.Context, userID string, q TaskQuery) (*model.TaskListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	order := "created_at DESC, id DESC"

	if q.SkipPagination {
		var tasks []model.Task
		if err := s.scoped(ctx, userID, q).Order(order).Find(&tasks).Error; err != nil {
			return nil, fmt.Errorf("query tasks: %w", err)
		}
		if tasks == nil {
			tasks = []model.Task{}
		}
		return &model.TaskListResponse{Tasks: tasks, TotalPages: 1, CurrentPage: 1}, nil
	}

	var (
		tasks    []model.Task
		total    int64
		listErr  error
		countErr error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		listErr = s.scoped(ctx, userID, q).
			Order(order).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&tasks).Error
	}()
	go func() {
		defer wg.Done()
		countErr = s.scoped(ctx, userID, q).Count(&total).Error
	}()
	wg.Wait()

	if listErr != nil {
		return nil, fmt.Errorf("query tasks: %w", listErr)
	}
	if countErr != nil {
		return nil, fmt.Errorf("count tasks: %w", countErr)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &model.TaskListResponse{Tasks: tasks, TotalPages: totalPages, CurrentPage: page}, nil
}

func (s *TaskService) Create(ctx context.Context, userID string, req model.CreateTaskRequest) (*model.Task, error) {
	status := model.TaskStatus(req.Status)
	if req.Status == "" {
		status = model.StatusTodo
	}
	if err := validateTaskEnums(status, model.TaskPriority(req.Priority), model.TaskType(req.Type)); err != nil {
		return nil, err
	}

	t := model.Task{
		Title:        req.Title,
		Description:  req.Description,
		Status:       status,
		Priority:     model.TaskPriority(req.Priority),
		Type:         model.TaskType(req.Type),
		Tags:         datatypes.NewJSONSlice(req.Tags),
		Deadline:     req.Deadline,
		ProjectID:    req.ProjectID,
		AssignedToID: req.AssignedToID,
		CreatedByID:  userID,
	}
	if req.StartDate != nil {
		t.StartDate = *req.StartDate
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

// Update overwrites every mutable field of a task. The owning project and
// the creator are not part of the input and never change.
func (s *TaskService) Update(ctx context.Context, id string, req model.UpdateTaskRequest) (*model.Task, error) {
	if err := validateTaskEnums(model.TaskStatus(req.Status), model.TaskPriority(req.Priority), model.TaskType(req.Type)); err != nil {
		return nil, err
	}

	var t model.Task
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("lookup task: %w", err)
	}

	t.Title = req.Title
	t.Description = req.Description
	t.Status = model.TaskStatus(req.Status)
	t.Priority = model.TaskPriority(req.Priority)
	t.Type = model.TaskType(req.Type)
	t.Tags = datatypes.NewJSONSlice(req.Tags)
	t.Deadline = req.Deadline
	t.AssignedToID = req.AssignedToID
	if req.StartDate != nil {
		t.StartDate = *req.StartDate
	}

	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &t, nil
}

// UpdateStatus moves a task to any of the three statuses. There is no
// transition graph; TODO may go straight to DONE and DONE may reopen.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of TODO, IN_PROGRESS, DONE", ErrInvalidInput)
	}
	var t model.Task
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("lookup task: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&t).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return &t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete task: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func validateTaskEnums(status model.TaskStatus, priority model.TaskPriority, taskType model.TaskType) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status must be one of TODO, IN_PROGRESS, DONE", ErrInvalidInput)
	}
	if !priority.Valid() {
		return fmt.Errorf("%w: priority must be one of LOW, MEDIUM, HIGH", ErrInvalidInput)
	}
	if !taskType.Valid() {
		return fmt.Errorf("%w: type must be one of FEATURE, BUG, IMPROVEMENT", ErrInvalidInput)
	}
	return nil
}
