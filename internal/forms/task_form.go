// Package forms binds and validates the task form posted by the add and
// edit pages.
package forms

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"tasktracker/internal/models"
)

// DateLayout is the format of the due_date form field.
const DateLayout = "2006-01-02"

// TaskForm mirrors the fields of the add/edit form. Validation rules use
// the "validate" tag so gin's own binding validator leaves them alone;
// TaskForm.Validate runs them after trimming.
type TaskForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"max=1000"`
	DueDate     string `form:"due_date" validate:"omitempty,isodate"`
	Priority    string `form:"priority" validate:"required,priority"`
	Completed   string `form:"completed"`
}

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// NewTaskForm returns the blank form shown on the add page.
func NewTaskForm() TaskForm {
	return TaskForm{Priority: string(models.PriorityMedium)}
}

// FromTask pre-fills the edit form.
func FromTask(t *models.Task) TaskForm {
	f := TaskForm{
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
	}
	if t.DueDate != nil {
		f.DueDate = t.DueDate.Format(DateLayout)
	}
	if t.Completed {
		f.Completed = "true"
	}
	return f
}

// Checked reports whether the completed checkbox was ticked. Browsers send
// "on" by default; only an empty value or "false" counts as unchecked.
func (f TaskForm) Checked() bool {
	v := strings.ToLower(strings.TrimSpace(f.Completed))
	return v != "" && v != "false"
}

// Validate normalizes the form in place and returns the field errors, or
// nil when the form is valid.
func (f *TaskForm) Validate() FieldErrors {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DueDate = strings.TrimSpace(f.DueDate)

	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		name := fieldName(fe.StructField())
		if _, seen := out[name]; !seen {
			out[name] = message(name, fe.Tag())
		}
	}
	return out
}

// Task converts a validated form into a task record.
func (f TaskForm) Task() *models.Task {
	t := &models.Task{
		Title:       f.Title,
		Description: f.Description,
		Priority:    models.TaskPriority(f.Priority),
		Completed:   f.Checked(),
	}
	if f.DueDate != "" {
		if d, err := time.Parse(DateLayout, f.DueDate); err == nil {
			t.DueDate = &d
		}
	}
	return t
}

func fieldName(structField string) string {
	switch structField {
	case "Title":
		return "title"
	case "Description":
		return "description"
	case "DueDate":
		return "due_date"
	case "Priority":
		return "priority"
	}
	return strings.ToLower(structField)
}

func message(field, tag string) string {
	switch {
	case tag == "required":
		return "This field is required."
	case field == "title":
		return "Field must be between 1 and 200 characters long."
	case field == "description":
		return "Field cannot be longer than 1000 characters."
	case field == "due_date":
		return "Not a valid date value."
	case field == "priority":
		return "Not a valid choice."
	}
	return "Invalid value."
}
