package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/query"
	"github.com/jordanhale/taskdeck/internal/tasks"
)

type TaskHandler struct {
	svc *tasks.Service
}

func NewTaskHandler(svc *tasks.Service) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// specFromQuery maps URL query parameters onto a query specification.
// Enum values pass through as-is; the engine owns their validation.
func specFromQuery(q url.Values) (query.Spec, error) {
	var spec query.Spec

	if v := q.Get("status"); v != "" {
		status := models.TaskStatus(v)
		spec.Status = &status
	}
	if v := q.Get("category"); v != "" {
		category := models.TaskCategory(v)
		spec.Category = &category
	}
	if v := q.Get("priority"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return spec, models.Invalid("priority", "priority must be a number, got %q", v)
		}
		spec.Priority = &p
	}
	spec.Search = q.Get("search")
	if v := q.Get("overdue"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return spec, models.Invalid("overdue", "overdue must be a boolean, got %q", v)
		}
		spec.OverdueOnly = b
	}
	spec.SortBy = query.SortKey(q.Get("sort_by"))
	spec.SortOrder = query.SortOrder(q.Get("sort_order"))
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return spec, models.Invalid("limit", "limit must be a number, got %q", v)
		}
		spec.Limit = &n
	}
	return spec, nil
}

// filterEcho reports the filter parameters a response acted on.
func filterEcho(q url.Values) map[string]string {
	echo := map[string]string{}
	for _, key := range []string{"status", "category", "priority", "search", "overdue", "sort_by", "sort_order", "limit"} {
		if v := q.Get(key); v != "" {
			echo[key] = v
		}
	}
	return echo
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, err := specFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Query(spec)
	if err != nil {
		if models.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tasks":     res.Tasks,
		"count":     len(res.Tasks),
		"filters":   filterEcho(r.URL.Query()),
		"timestamp": timestamp(),
	})
}

// Statistics handles GET /api/tasks/statistics. It accepts the same filter
// parameters as List and reports aggregates over the filtered set.
func (h *TaskHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	spec, err := specFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Query(spec)
	if err != nil {
		if models.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"statistics": res.Stats,
		"filters":    filterEcho(r.URL.Query()),
		"timestamp":  timestamp(),
	})
}

// Categories handles GET /api/tasks/categories.
func (h *TaskHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := make([]models.CategoryInfo, 0, len(models.AllCategories))
	for _, c := range models.AllCategories {
		categories = append(categories, models.CategoryInfo{
			Value: string(c),
			Label: c.Label(),
			Color: c.Color(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"timestamp":  timestamp(),
	})
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := h.svc.Create(&req)
	if err != nil {
		if models.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"task":    task,
		"message": "Task created successfully",
	})
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "task id must be a number")
		return
	}

	task, err := h.svc.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"task":      task,
		"timestamp": timestamp(),
	})
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "task id must be a number")
		return
	}

	var req models.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := h.svc.Update(id, &req)
	if err != nil {
		if models.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"task":    task,
		"message": "Task updated successfully",
	})
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "task id must be a number")
		return
	}

	deleted, err := h.svc.Delete(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
