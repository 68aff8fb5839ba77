package query

import (
	"sort"
	"strings"
	"time"

	"github.com/jordanhale/taskdeck/internal/models"
)

// Result is the output of Run: the filtered, sorted, limited task view and
// statistics over the filtered set (before the limit is applied).
type Result struct {
	Tasks []models.Task `json:"tasks"`
	Stats Stats         `json:"statistics"`
}

// Run evaluates spec against a snapshot of tasks. It validates the spec
// first and returns a *models.ValidationError without partial results if
// any field is rejected. The input slice is never modified.
func Run(tasks []models.Task, spec Spec, now time.Time) (*Result, error) {
	spec = spec.withDefaults()
	if err := spec.validate(); err != nil {
		return nil, err
	}

	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if spec.matches(&t, now) {
			filtered = append(filtered, t)
		}
	}

	sortTasks(filtered, spec.SortBy, spec.SortOrder)

	// Statistics cover the whole filtered set; the limit only truncates
	// the returned list.
	stats := Summarize(filtered, now)

	out := filtered
	if spec.Limit != nil && len(out) > *spec.Limit {
		out = out[:*spec.Limit]
	}

	return &Result{Tasks: out, Stats: stats}, nil
}

// matches reports whether the task satisfies every supplied predicate.
func (s Spec) matches(t *models.Task, now time.Time) bool {
	if s.Status != nil && t.Status != *s.Status {
		return false
	}
	if s.Category != nil && t.Category != *s.Category {
		return false
	}
	if s.Priority != nil && t.Priority != *s.Priority {
		return false
	}
	if s.Search != "" {
		needle := strings.ToLower(s.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!(t.Description != "" && strings.Contains(strings.ToLower(t.Description), needle)) {
			return false
		}
	}
	if s.OverdueOnly && !t.IsOverdue(now) {
		return false
	}
	return true
}

// sortTasks orders tasks in place with a stable sort, so ties keep their
// insertion order and pagination stays reproducible.
func sortTasks(tasks []models.Task, key SortKey, order SortOrder) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return less(&tasks[i], &tasks[j], key, order)
	})
}

func less(a, b *models.Task, key SortKey, order SortOrder) bool {
	// Tasks without a due date sort after all dated tasks, regardless of
	// direction.
	if key == SortDueDate {
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		}
	}

	c := compare(a, b, key)
	if c == 0 {
		return false
	}
	if order == OrderDesc {
		return c > 0
	}
	return c < 0
}

// compare returns -1, 0, or 1 for the primary key. The switch is
// exhaustive over SortKey; validate has already rejected anything else.
func compare(a, b *models.Task, key SortKey) int {
	switch key {
	case SortCreated:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortDueDate:
		return a.DueDate.Compare(*b.DueDate)
	case SortPriority:
		switch {
		case a.Priority < b.Priority:
			return -1
		case a.Priority > b.Priority:
			return 1
		}
		return 0
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortCategory:
		return strings.Compare(strings.ToLower(string(a.Category)), strings.ToLower(string(b.Category)))
	}
	return 0
}
