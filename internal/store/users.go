package store

import (
	"github.com/jordanhale/taskdeck/internal/models"
)

// UserStore reads and writes the user collection in users.json.
type UserStore struct {
	db *DB
}

func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// List returns every user.
func (s *UserStore) List() ([]models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.list()
}

func (s *UserStore) list() ([]models.User, error) {
	var users []models.User
	if err := s.db.readFile(usersFile, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Preferences == nil {
			users[i].Preferences = map[string]any{}
		}
	}
	return users, nil
}

// Get returns the user with the given id, or nil if no such user exists.
func (s *UserStore) Get(id string) (*models.User, error) {
	users, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByUsername returns the user with the given username, or nil.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	users, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Save inserts the user, or replaces the stored record with the same id.
func (s *UserStore) Save(user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	users, err := s.list()
	if err != nil {
		return err
	}
	replaced := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *user)
	}
	return s.db.writeFile(usersFile, users)
}

// Delete removes the user with the given id and reports whether a record
// was actually removed.
func (s *UserStore) Delete(id string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	users, err := s.list()
	if err != nil {
		return false, err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}
	return true, s.db.writeFile(usersFile, kept)
}
