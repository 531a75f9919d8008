package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/models"
)

func TestValidateAcceptsMinimalForm(t *testing.T) {
	f := TaskForm{Title: "  Buy milk ", Priority: "High"}
	require.Nil(t, f.Validate())
	assert.Equal(t, "Buy milk", f.Title)

	task := f.Task()
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.False(t, task.Completed)
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		form  TaskForm
		field string
		msg   string
	}{
		{"missing title", TaskForm{Priority: "Low"}, "title", "This field is required."},
		{"blank title", TaskForm{Title: "   ", Priority: "Low"}, "title", "This field is required."},
		{"long title", TaskForm{Title: strings.Repeat("a", 201), Priority: "Low"}, "title", "Field must be between 1 and 200 characters long."},
		{"long description", TaskForm{Title: "t", Description: strings.Repeat("d", 1001), Priority: "Low"}, "description", "Field cannot be longer than 1000 characters."},
		{"bad date", TaskForm{Title: "t", DueDate: "2024-02-30", Priority: "Low"}, "due_date", "Not a valid date value."},
		{"bad date format", TaskForm{Title: "t", DueDate: "03/01/2024", Priority: "Low"}, "due_date", "Not a valid date value."},
		{"unknown priority", TaskForm{Title: "t", Priority: "Urgent"}, "priority", "Not a valid choice."},
		{"missing priority", TaskForm{Title: "t"}, "priority", "This field is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			require.NotNil(t, errs)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestLengthsCountCharacters(t *testing.T) {
	f := TaskForm{Title: strings.Repeat("ü", 200), Priority: "Low"}
	assert.Nil(t, f.Validate())
}

func TestDueDateAndCompleted(t *testing.T) {
	f := TaskForm{Title: "t", Priority: "Medium", DueDate: "2024-03-09", Completed: "on"}
	require.Nil(t, f.Validate())

	task := f.Task()
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, task.Completed)
}

func TestChecked(t *testing.T) {
	for v, want := range map[string]bool{"": false, "false": false, "FALSE": false, "on": true, "true": true, "y": true} {
		assert.Equal(t, want, TaskForm{Completed: v}.Checked(), v)
	}
}

func TestFromTask(t *testing.T) {
	d := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	f := FromTask(&models.Task{Title: "t", Description: "d", DueDate: &d, Priority: models.PriorityLow, Completed: true})
	assert.Equal(t, TaskForm{Title: "t", Description: "d", DueDate: "2024-03-09", Priority: "Low", Completed: "true"}, f)

	assert.Equal(t, "Medium", NewTaskForm().Priority)
}
