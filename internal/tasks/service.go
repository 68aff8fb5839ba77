// Package tasks owns the task record lifecycle: creation with id
// assignment and validation, partial updates with timestamp refresh, and
// deletion. Query evaluation is delegated to the pure engine in
// internal/query; this package supplies the snapshot and the clock.
package tasks

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/query"
	"github.com/jordanhale/taskdeck/internal/store"
)

// Service is the facade for all task operations.
type Service struct {
	store  *store.TaskStore
	logger *slog.Logger
	now    func() time.Time
}

func NewService(taskStore *store.TaskStore, logger *slog.Logger) *Service {
	return &Service{
		store:  taskStore,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates req, assigns an id and timestamps, and persists the new
// task. A missing category defaults to "other"; an unrecognized one is
// rejected.
func (s *Service) Create(req *models.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, models.Invalid("title", "title is required")
	}
	if len(req.Title) > models.MaxTitleLength {
		return nil, models.Invalid("title", "title too long (max %d characters)", models.MaxTitleLength)
	}

	priority := models.MinPriority
	if req.Priority != nil {
		priority = *req.Priority
	}
	if priority < models.MinPriority || priority > models.MaxPriority {
		return nil, models.Invalid("priority", "priority must be between %d and %d, got %d",
			models.MinPriority, models.MaxPriority, priority)
	}

	category := models.CategoryOther
	if req.Category != "" {
		category = models.TaskCategory(req.Category)
		if !category.IsValid() {
			return nil, models.Invalid("category", "unknown category %q", req.Category)
		}
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	id, err := s.store.AllocateID()
	if err != nil {
		return nil, fmt.Errorf("allocate task id: %w", err)
	}

	now := s.now()
	task := &models.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
		Tags:        req.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	if err := s.store.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	s.logger.Info("task created", "id", task.ID, "category", task.Category)
	return task, nil
}

// Update applies the non-nil fields of req to the stored task, refreshes
// UpdatedAt, and persists. Returns nil if no task has that id.
func (s *Service) Update(id int, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, models.Invalid("title", "title cannot be empty")
		}
		if len(*req.Title) > models.MaxTitleLength {
			return nil, models.Invalid("title", "title too long (max %d characters)", models.MaxTitleLength)
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, models.Invalid("status", "unknown status %q", *req.Status)
		}
		task.Status = status
	}
	if req.Category != nil {
		category := models.TaskCategory(*req.Category)
		if !category.IsValid() {
			return nil, models.Invalid("category", "unknown category %q", *req.Category)
		}
		task.Category = category
	}
	if req.Priority != nil {
		if *req.Priority < models.MinPriority || *req.Priority > models.MaxPriority {
			return nil, models.Invalid("priority", "priority must be between %d and %d, got %d",
				models.MinPriority, models.MaxPriority, *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else {
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				return nil, err
			}
			task.DueDate = due
		}
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
		if task.Tags == nil {
			task.Tags = []string{}
		}
	}

	task.UpdatedAt = s.now()
	if err := s.store.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	s.logger.Info("task updated", "id", task.ID)
	return task, nil
}

// Delete removes the task and reports whether it existed.
func (s *Service) Delete(id int) (bool, error) {
	deleted, err := s.store.Delete(id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("task deleted", "id", id)
	}
	return deleted, nil
}

// Get returns the task with the given id, or nil.
func (s *Service) Get(id int) (*models.Task, error) {
	return s.store.Get(id)
}

// List returns the full task collection.
func (s *Service) List() ([]models.Task, error) {
	return s.store.List()
}

// Query loads a snapshot of the collection and evaluates spec against it.
func (s *Service) Query(spec query.Spec) (*query.Result, error) {
	tasks, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return query.Run(tasks, spec, s.now())
}

// dueDateLayouts are the accepted due-date formats, tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, models.Invalid("due_date", "invalid date %q, use YYYY-MM-DD or RFC 3339", raw)
}
