package store

import (
	"github.com/jordanhale/taskdeck/internal/models"
)

// TaskStore reads and writes the task collection in tasks.json.
type TaskStore struct {
	db *DB
}

func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db}
}

// List returns every task. Records written before categories existed, or
// holding a category the current build does not know, load as "other";
// the normalization happens here so the query engine's input is always
// well-formed.
func (s *TaskStore) List() ([]models.Task, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.list()
}

func (s *TaskStore) list() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.readFile(tasksFile, &tasks); err != nil {
		return nil, err
	}
	for i := range tasks {
		if !tasks[i].Category.IsValid() {
			tasks[i].Category = models.CategoryOther
		}
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
	}
	return tasks, nil
}

// Get returns the task with the given id, or nil if no such task exists.
func (s *TaskStore) Get(id int) (*models.Task, error) {
	tasks, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// Save inserts the task, or replaces the stored record with the same id.
func (s *TaskStore) Save(task *models.Task) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tasks, err := s.list()
	if err != nil {
		return err
	}
	replaced := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = *task
			replaced = true
			break
		}
	}
	if !replaced {
		tasks = append(tasks, *task)
	}
	return s.db.writeFile(tasksFile, tasks)
}

// Delete removes the task with the given id and reports whether a record
// was actually removed.
func (s *TaskStore) Delete(id int) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tasks, err := s.list()
	if err != nil {
		return false, err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false, nil
	}
	return true, s.db.writeFile(tasksFile, kept)
}

// idCounterKey is the settings key holding the id high-water mark, so ids
// are never reused even after the highest-numbered task is deleted.
const idCounterKey = "next_task_id"

// AllocateID reserves and returns the next task id.
func (s *TaskStore) AllocateID() (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tasks, err := s.list()
	if err != nil {
		return 0, err
	}
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}

	settings := map[string]any{}
	if err := s.db.readFile(settingsFile, &settings); err != nil {
		return 0, err
	}
	if v, ok := settings[idCounterKey].(float64); ok && int(v) > next {
		next = int(v)
	}
	settings[idCounterKey] = next + 1
	if err := s.db.writeFile(settingsFile, settings); err != nil {
		return 0, err
	}
	return next, nil
}
