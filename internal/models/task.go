package models

import "time"

// Task is the core domain entity persisted in tasks.json.
//
// IDs are assigned once at creation and never reused. UpdatedAt is
// refreshed on every mutation and is always >= CreatedAt.
type Task struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    int          `json:"priority"`
	Category    TaskCategory `json:"category"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsOverdue reports whether the task's due date has passed as of now.
// A task with no due date is never overdue, and neither is a task in a
// terminal state regardless of its date.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status.Done() {
		return false
	}
	return now.After(*t.DueDate)
}

// IsHighPriority reports whether the task sits in the top two priority bands.
func (t *Task) IsHighPriority() bool {
	return t.Priority >= 4
}

// Priority bounds enforced at creation and update.
const (
	MinPriority = 1
	MaxPriority = 5
)

// MaxTitleLength is the longest accepted task title.
const MaxTitleLength = 200
