package services

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"tasktracker/internal/models"
)

// QueryTasks returns the tasks matching every active filter in f, ordered
// by f.SortBy. Search is case-insensitive. Equal sort keys are ordered by
// ID (descending for created_desc, ascending otherwise), so the result
// does not depend on the order of the input slice. The input is not
// modified.
func QueryTasks(tasks []models.Task, f models.TaskFilter) []models.Task {
	fold := cases.Fold()
	needle := fold.String(f.Search)

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if needle != "" &&
			!strings.Contains(fold.String(t.Title), needle) &&
			!strings.Contains(fold.String(t.Description), needle) {
			continue
		}
		switch f.Status {
		case models.StatusPending:
			if t.Completed {
				continue
			}
		case models.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		out = append(out, t)
	}

	less := lessFunc(f.SortBy)
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

// lessFunc builds a strict total order for the given sort key.
func lessFunc(by models.TaskSort) func(a, b *models.Task) bool {
	byIDAsc := func(a, b *models.Task) bool { return a.ID < b.ID }

	switch by {
	case models.SortCreatedAsc:
		return func(a, b *models.Task) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return byIDAsc(a, b)
		}
	case models.SortDueDateAsc:
		return func(a, b *models.Task) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return byIDAsc(a, b)
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			case !a.DueDate.Equal(*b.DueDate):
				return a.DueDate.Before(*b.DueDate)
			}
			return byIDAsc(a, b)
		}
	case models.SortDueDateDesc:
		return func(a, b *models.Task) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return byIDAsc(a, b)
			case a.DueDate == nil:
				return true
			case b.DueDate == nil:
				return false
			case !a.DueDate.Equal(*b.DueDate):
				return a.DueDate.After(*b.DueDate)
			}
			return byIDAsc(a, b)
		}
	case models.SortPriorityDesc:
		return func(a, b *models.Task) bool {
			if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
				return ra > rb
			}
			return byIDAsc(a, b)
		}
	case models.SortPriorityAsc:
		return func(a, b *models.Task) bool {
			if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
				return ra < rb
			}
			return byIDAsc(a, b)
		}
	}

	// created_desc and anything unrecognized
	return func(a, b *models.Task) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	}
}
