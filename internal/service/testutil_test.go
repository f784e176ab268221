package service

import (
	"testing"
	"time"

	"taskhub/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database visible to the
	// concurrent list/count queries.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, model.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u := model.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createProject(t *testing.T, db *gorm.DB, name string) *model.Project {
	t.Helper()
	p := model.Project{Name: name, Details: "details"}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

type taskOpts struct {
	title       string
	description string
	status      model.TaskStatus
	priority    model.TaskPriority
	taskType    model.TaskType
	tags        []string
	assignedTo  *string
	deadline    time.Time
}

func createTask(t *testing.T, db *gorm.DB, projectID, createdBy string, opts taskOpts) *model.Task {
	t.Helper()
	if opts.title == "" {
		opts.title = "task"
	}
	if opts.status == "" {
		opts.status = model.StatusTodo
	}
	if opts.priority == "" {
		opts.priority = model.PriorityMedium
	}
	if opts.taskType == "" {
		opts.taskType = model.TypeFeature
	}
	if opts.deadline.IsZero() {
		opts.deadline = time.Now().AddDate(0, 0, 7)
	}
	task := model.Task{
		Title:        opts.title,
		Description:  opts.description,
		Status:       opts.status,
		Priority:     opts.priority,
		Type:         opts.taskType,
		Tags:         opts.tags,
		Deadline:     opts.deadline,
		ProjectID:    projectID,
		AssignedToID: opts.assignedTo,
		CreatedByID:  createdBy,
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}
