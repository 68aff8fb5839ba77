package models

import "time"

// User is an application user persisted in users.json.
type User struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	CreatedAt   time.Time      `json:"created_at"`
	LastLogin   *time.Time     `json:"last_login,omitempty"`
	IsActive    bool           `json:"is_active"`
	Preferences map[string]any `json:"preferences"`
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TouchLogin records a login at now.
func (u *User) TouchLogin(now time.Time) {
	u.LastLogin = &now
}
