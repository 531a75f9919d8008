package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestTaskIsOverdue(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date pending", Task{}, false},
		{"no due date completed", Task{Completed: true}, false},
		{"past due pending", Task{DueDate: date(2024, 5, 9)}, true},
		{"past due completed", Task{DueDate: date(2024, 5, 9), Completed: true}, false},
		{"due today", Task{DueDate: date(2024, 5, 10)}, false},
		{"due tomorrow", Task{DueDate: date(2024, 5, 11)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.IsOverdue(today))
		})
	}
}

func TestPriorityRankAndClasses(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 0, TaskPriority("Urgent").Rank())

	assert.Equal(t, "badge bg-danger", PriorityHigh.BadgeClass())
	assert.Equal(t, "badge bg-secondary", TaskPriority("x").BadgeClass())
	assert.Equal(t, "text-success", PriorityLow.TextClass())
	assert.Equal(t, "text-secondary", TaskPriority("").TextClass())

	assert.True(t, PriorityMedium.IsValid())
	assert.False(t, TaskPriority("medium").IsValid())
}

func TestNewTaskFilterDefaults(t *testing.T) {
	f := NewTaskFilter("", "", "", "")
	assert.Equal(t, TaskFilter{Status: StatusAll, SortBy: SortCreatedDesc}, f)
	assert.Equal(t, PriorityAll, f.PriorityValue())

	f = NewTaskFilter("  milk ", "done", "Urgent", "title_asc")
	assert.Equal(t, "milk", f.Search)
	assert.Equal(t, StatusAll, f.Status)
	assert.Equal(t, TaskPriority(""), f.Priority)
	assert.Equal(t, SortCreatedDesc, f.SortBy)

	f = NewTaskFilter("x", "pending", "High", "due_date_desc")
	assert.Equal(t, StatusPending, f.Status)
	assert.Equal(t, PriorityHigh, f.Priority)
	assert.Equal(t, "High", f.PriorityValue())
	assert.Equal(t, SortDueDateDesc, f.SortBy)
}

func TestDateOfKeepsCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2024, 1, 2, 1, 0, 0, 0, loc) // still Jan 1 in UTC
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), DateOf(in))
}
