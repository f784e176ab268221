package model

import "fmt"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

type TaskType string

const (
	TypeFeature     TaskType = "FEATURE"
	TypeBug         TaskType = "BUG"
	TypeImprovement TaskType = "IMPROVEMENT"
)

// FilterAll is accepted in filter position only and means "no constraint".
// It is never a persistable task attribute value.
const FilterAll = "ALL"

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (t TaskType) Valid() bool {
	switch t {
	case TypeFeature, TypeBug, TypeImprovement:
		return true
	}
	return false
}

// StatusFilter maps a raw filter value to an optional constraint.
// Empty string and ALL both mean "no constraint".
func StatusFilter(v string) (*TaskStatus, error) {
	if v == "" || v == FilterAll {
		return nil, nil
	}
	s := TaskStatus(v)
	if !s.Valid() {
		return nil, fmt.Errorf("unknown status %q", v)
	}
	return &s, nil
}

func PriorityFilter(v string) (*TaskPriority, error) {
	if v == "" || v == FilterAll {
		return nil, nil
	}
	p := TaskPriority(v)
	if !p.Valid() {
		return nil, fmt.Errorf("unknown priority %q", v)
	}
	return &p, nil
}

func TypeFilter(v string) (*TaskType, error) {
	if v == "" || v == FilterAll {
		return nil, nil
	}
	t := TaskType(v)
	if !t.Valid() {
		return nil, fmt.Errorf("unknown type %q", v)
	}
	return &t, nil
}
