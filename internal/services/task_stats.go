package services

import (
	"math"
	"time"

	"tasktracker/internal/models"
)

// ComputeStats derives the listing counters over the whole collection.
// now supplies the current calendar date for the overdue count.
func ComputeStats(tasks []models.Task, now time.Time) models.TaskStats {
	var st models.TaskStats
	st.Total = len(tasks)

	withDue := 0
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
		if t.DueDate != nil {
			withDue++
		}
	}
	st.Pending = st.Total - st.Completed

	// no task carries a due date: nothing can be overdue
	if withDue > 0 {
		for _, t := range tasks {
			if t.IsOverdue(now) {
				st.Overdue++
			}
		}
	}

	st.CompletionRate = completionRate(st.Completed, st.Total)
	return st
}

// completionRate is completed/total as a percentage rounded half-to-even
// to one decimal place, 0 for an empty collection.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(completed) / float64(total) * 100
	return math.RoundToEven(pct*10) / 10
}
