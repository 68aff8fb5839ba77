package query

import (
	"time"

	"github.com/jordanhale/taskdeck/internal/models"
)

// Stats is a statistics snapshot over a task collection.
type Stats struct {
	Total          int                         `json:"total"`
	ByStatus       map[models.TaskStatus]int   `json:"by_status"`
	ByCategory     map[models.TaskCategory]int `json:"by_category"`
	Overdue        int                         `json:"overdue"`
	CompletionRate float64                     `json:"completion_rate"`
}

// Summarize computes aggregate counts over tasks. The completion rate is
// completed/total as a fraction; an empty collection yields 0, not an
// error. Every status and category appears in the maps even at zero
// count, so clients can render fixed tables.
func Summarize(tasks []models.Task, now time.Time) Stats {
	stats := Stats{
		Total:      len(tasks),
		ByStatus:   make(map[models.TaskStatus]int, len(models.AllStatuses)),
		ByCategory: make(map[models.TaskCategory]int, len(models.AllCategories)),
	}
	for _, s := range models.AllStatuses {
		stats.ByStatus[s] = 0
	}
	for _, c := range models.AllCategories {
		stats.ByCategory[c] = 0
	}

	for _, t := range tasks {
		stats.ByStatus[t.Status]++
		stats.ByCategory[t.Category]++
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.ByStatus[models.StatusCompleted]) / float64(stats.Total)
	}
	return stats
}
