package tasks

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/query"
	"github.com/jordanhale/taskdeck/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return NewService(store.NewTaskStore(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func intp(n int) *int { return &n }

func strp(s string) *string { return &s }

func TestCreateDefaults(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.Create(&models.CreateTaskRequest{Title: "Read a book"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if task.ID != 1 {
		t.Errorf("ID = %d, want 1", task.ID)
	}
	if task.Status != models.StatusPending {
		t.Errorf("Status = %s, want pending", task.Status)
	}
	if task.Priority != models.MinPriority {
		t.Errorf("Priority = %d, want %d", task.Priority, models.MinPriority)
	}
	if task.Category != models.CategoryOther {
		t.Errorf("Category = %s, want other", task.Category)
	}
	if task.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", task.DueDate)
	}
	if task.Tags == nil {
		t.Error("Tags = nil, want empty slice")
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v on create", task.CreatedAt, task.UpdatedAt)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		req  *models.CreateTaskRequest
	}{
		{"empty title", &models.CreateTaskRequest{Title: "   "}},
		{"title too long", &models.CreateTaskRequest{Title: strings.Repeat("x", models.MaxTitleLength+1)}},
		{"priority too high", &models.CreateTaskRequest{Title: "t", Priority: intp(6)}},
		{"priority too low", &models.CreateTaskRequest{Title: "t", Priority: intp(0)}},
		{"unknown category", &models.CreateTaskRequest{Title: "t", Category: "chores"}},
		{"bad due date", &models.CreateTaskRequest{Title: "t", DueDate: "next tuesday"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.req); !models.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateDueDateFormats(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-01T14:30:00", time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)},
		{"2024-03-01T14:30:00Z", time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			task, err := svc.Create(&models.CreateTaskRequest{Title: "dated", DueDate: tc.raw})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if task.DueDate == nil || !task.DueDate.Equal(tc.want) {
				t.Errorf("DueDate = %v, want %v", task.DueDate, tc.want)
			}
		})
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) }

	created, err := svc.Create(&models.CreateTaskRequest{
		Title:       "Original",
		Description: "keep me",
		Priority:    intp(2),
		Category:    string(models.CategoryWork),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc.now = func() time.Time { return time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC) }
	updated, err := svc.Update(created.ID, &models.UpdateTaskRequest{
		Status:   strp("in_progress"),
		Priority: intp(5),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("Update returned nil for existing task")
	}

	if updated.Title != "Original" || updated.Description != "keep me" {
		t.Errorf("unchanged fields modified: %+v", updated)
	}
	if updated.Status != models.StatusInProgress {
		t.Errorf("Status = %s, want in_progress", updated.Status)
	}
	if updated.Priority != 5 {
		t.Errorf("Priority = %d, want 5", updated.Priority)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestUpdateClearsDueDate(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&models.CreateTaskRequest{Title: "dated", DueDate: "2024-03-01"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(created.ID, &models.UpdateTaskRequest{DueDate: strp("")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DueDate != nil {
		t.Errorf("DueDate = %v, want nil after clearing", updated.DueDate)
	}
}

func TestUpdateMissingTask(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.Update(42, &models.UpdateTaskRequest{Title: strp("nope")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if task != nil {
		t.Errorf("expected nil for missing task, got %+v", task)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&models.CreateTaskRequest{Title: "t"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cases := []struct {
		name string
		req  *models.UpdateTaskRequest
	}{
		{"empty title", &models.UpdateTaskRequest{Title: strp("  ")}},
		{"unknown status", &models.UpdateTaskRequest{Status: strp("archived")}},
		{"unknown category", &models.UpdateTaskRequest{Category: strp("chores")}},
		{"priority out of range", &models.UpdateTaskRequest{Priority: intp(9)}},
		{"bad due date", &models.UpdateTaskRequest{DueDate: strp("soon")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Update(created.ID, tc.req); !models.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&models.CreateTaskRequest{Title: "t"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("Delete returned false for existing task")
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("task still present after delete: %+v", got)
	}
}

func TestQueryThroughService(t *testing.T) {
	svc := newTestService(t)

	for _, title := range []string{"alpha", "beta", "gamma"} {
		if _, err := svc.Create(&models.CreateTaskRequest{Title: title}); err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}

	res, err := svc.Query(query.Spec{Search: "beta"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Tasks) != 1 || res.Tasks[0].Title != "beta" {
		t.Errorf("Query = %+v, want single beta task", res.Tasks)
	}
	if res.Stats.Total != 1 {
		t.Errorf("Stats.Total = %d, want 1", res.Stats.Total)
	}
}
