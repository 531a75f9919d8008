// internal/models/task.go
package models

import "time"

// TaskPriority is one of Low, Medium or High.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Priorities lists the allowed priorities in form order.
var Priorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid reports whether p is one of the three known priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank maps High=3, Medium=2, Low=1. Unknown priorities rank 0.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// TextClass is the Bootstrap text class used to color the priority.
func (p TaskPriority) TextClass() string {
	switch p {
	case PriorityLow:
		return "text-success"
	case PriorityMedium:
		return "text-warning"
	case PriorityHigh:
		return "text-danger"
	}
	return "text-secondary"
}

// BadgeClass is the Bootstrap badge class used to render the priority.
func (p TaskPriority) BadgeClass() string {
	switch p {
	case PriorityLow:
		return "badge bg-success"
	case PriorityMedium:
		return "badge bg-warning"
	case PriorityHigh:
		return "badge bg-danger"
	}
	return "badge bg-secondary"
}

// Task represents a single to-do record.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"due_date,omitempty"` // calendar date, midnight UTC
	Priority    TaskPriority `json:"priority"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsOverdue reports whether the task is incomplete and its due date lies
// strictly before today. Only the calendar date of both values is compared.
func (t Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return DateOf(*t.DueDate).Before(DateOf(today))
}

// DateOf drops the time of day, keeping the calendar date of t in its own
// location, and returns it as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
