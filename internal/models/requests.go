package models

import "strings"

// CreateTaskRequest is the payload for POST /api/tasks and the CLI create
// command. DueDate accepts "2006-01-02", "2006-01-02T15:04:05", or RFC 3339.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    *int     `json:"priority"`
	Category    string   `json:"category"`
	DueDate     string   `json:"due_date"`
	Tags        []string `json:"tags"`
}

// UpdateTaskRequest is the payload for PUT /api/tasks/{id}. Nil fields are
// left unchanged; an empty DueDate string clears the due date.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Category    *string   `json:"category"`
	Priority    *int      `json:"priority"`
	DueDate     *string   `json:"due_date"`
	Tags        *[]string `json:"tags"`
}

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate checks required fields and the email shape.
func (r *CreateUserRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"username", r.Username},
		{"email", r.Email},
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Invalid(f.name, "%s is required", f.name)
		}
	}
	if !strings.Contains(r.Email, "@") || !strings.Contains(r.Email, ".") {
		return Invalid("email", "invalid email format")
	}
	return nil
}

// SettingRequest is the payload for POST /api/admin/settings.
type SettingRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// CategoryInfo describes one task category for API clients.
type CategoryInfo struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// DatabaseCheck carries record counts for the health endpoint.
type DatabaseCheck struct {
	Tasks int `json:"tasks"`
	Users int `json:"users"`
}

// HealthResponse is returned from GET /api/admin/health.
type HealthResponse struct {
	Status    string        `json:"status"`
	Database  DatabaseCheck `json:"database"`
	Timestamp string        `json:"timestamp"`
}
