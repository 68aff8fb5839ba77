package api

import (
	"net/http"
	"strings"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/store"
	"github.com/jordanhale/taskdeck/internal/tasks"
)

type AdminHandler struct {
	tasks    *tasks.Service
	users    *store.UserStore
	settings *store.SettingsStore
}

func NewAdminHandler(taskSvc *tasks.Service, users *store.UserStore, settings *store.SettingsStore) *AdminHandler {
	return &AdminHandler{tasks: taskSvc, users: users, settings: settings}
}

// Health handles GET /api/admin/health.
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{Status: "healthy", Timestamp: timestamp()}

	taskList, err := h.tasks.List()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:    "unhealthy",
			Timestamp: timestamp(),
		})
		return
	}
	userList, err := h.users.List()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:    "unhealthy",
			Timestamp: timestamp(),
		})
		return
	}

	resp.Database.Tasks = len(taskList)
	resp.Database.Users = len(userList)
	writeJSON(w, http.StatusOK, resp)
}

// GetSettings handles GET /api/admin/settings.
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"settings":  settings,
		"timestamp": timestamp(),
	})
}

// UpdateSetting handles POST /api/admin/settings.
func (h *AdminHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req models.SettingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Key) == "" || req.Value == nil {
		writeError(w, http.StatusBadRequest, "key and value are required")
		return
	}

	if err := h.settings.Set(req.Key, req.Value); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Setting updated successfully",
		"key":     req.Key,
		"value":   req.Value,
	})
}
