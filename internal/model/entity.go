package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"size:191;uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          string              `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string              `json:"name"`
	Details     string              `gorm:"type:text" json:"details"`
	Summary     string              `gorm:"type:text" json:"summary"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Assignments []ProjectAssignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
}

type ProjectAssignment struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID  string    `gorm:"type:varchar(36);index" json:"project_id"`
	UserID     string    `gorm:"type:varchar(36);index" json:"user_id"`
	Role       string    `gorm:"size:50;default:member" json:"role"`
	AssignedAt time.Time `json:"assigned_at"`
}

type Task struct {
	ID           string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title        string                      `json:"title"`
	Description  string                      `gorm:"type:text" json:"description"`
	Status       TaskStatus                  `gorm:"size:20;default:TODO;index" json:"status"`
	Priority     TaskPriority                `gorm:"size:20" json:"priority"`
	Type         TaskType                    `gorm:"size:20" json:"type"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	StartDate    time.Time                   `json:"start_date"`
	Deadline     time.Time                   `json:"deadline"`
	ProjectID    string                      `gorm:"type:varchar(36);index" json:"project_id"`
	AssignedToID *string                     `gorm:"type:varchar(36);index" json:"assigned_to_id"`
	CreatedByID  string                      `gorm:"type:varchar(36);index" json:"created_by_id"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (User) TableName() string              { return "users" }
func (Project) TableName() string           { return "projects" }
func (ProjectAssignment) TableName() string { return "project_assignments" }
func (Task) TableName() string              { return "tasks" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (a *ProjectAssignment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	return nil
}

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Project{}, &ProjectAssignment{}, &Task{})
}
