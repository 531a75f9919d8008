package models

import "strings"

// TaskStatusFilter narrows the listing by completion state.
type TaskStatusFilter string

const (
	StatusAll       TaskStatusFilter = "all"
	StatusPending   TaskStatusFilter = "pending"
	StatusCompleted TaskStatusFilter = "completed"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

// TaskSort is one of the six recognized orderings.
type TaskSort string

const (
	SortCreatedDesc  TaskSort = "created_desc"
	SortCreatedAsc   TaskSort = "created_asc"
	SortDueDateAsc   TaskSort = "due_date_asc"
	SortDueDateDesc  TaskSort = "due_date_desc"
	SortPriorityDesc TaskSort = "priority_desc"
	SortPriorityAsc  TaskSort = "priority_asc"
)

// Choice is a value/label pair rendered as a <select> option.
type Choice struct {
	Value string
	Label string
}

var (
	StatusChoices = []Choice{
		{string(StatusAll), "All Tasks"},
		{string(StatusPending), "Pending"},
		{string(StatusCompleted), "Completed"},
	}
	PriorityChoices = []Choice{
		{PriorityAll, "All Priorities"},
		{string(PriorityLow), "Low"},
		{string(PriorityMedium), "Medium"},
		{string(PriorityHigh), "High"},
	}
	SortChoices = []Choice{
		{string(SortCreatedDesc), "Newest First"},
		{string(SortCreatedAsc), "Oldest First"},
		{string(SortDueDateAsc), "Due Date (Earliest)"},
		{string(SortDueDateDesc), "Due Date (Latest)"},
		{string(SortPriorityDesc), "Priority (High to Low)"},
		{string(SortPriorityAsc), "Priority (Low to High)"},
	}
)

// TaskFilter holds the normalized listing parameters.
// The zero value is not normalized; build it with NewTaskFilter.
type TaskFilter struct {
	Search   string
	Status   TaskStatusFilter
	Priority TaskPriority // empty means all priorities
	SortBy   TaskSort
}

// NewTaskFilter maps raw request values to a TaskFilter. Unknown values
// fall back to their defaults: no status filter, no priority filter and
// newest-first ordering.
func NewTaskFilter(search, status, priority, sortBy string) TaskFilter {
	f := TaskFilter{
		Search: strings.TrimSpace(search),
		Status: StatusAll,
		SortBy: SortCreatedDesc,
	}

	switch st := TaskStatusFilter(status); st {
	case StatusPending, StatusCompleted:
		f.Status = st
	}

	if p := TaskPriority(priority); p.IsValid() {
		f.Priority = p
	}

	switch s := TaskSort(sortBy); s {
	case SortCreatedAsc, SortDueDateAsc, SortDueDateDesc, SortPriorityDesc, SortPriorityAsc:
		f.SortBy = s
	}
	return f
}

// PriorityValue is the value shown in the filter form.
func (f TaskFilter) PriorityValue() string {
	if f.Priority == "" {
		return PriorityAll
	}
	return string(f.Priority)
}

// TaskStats are aggregate counts over the whole task collection.
type TaskStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completion_rate"`
}
