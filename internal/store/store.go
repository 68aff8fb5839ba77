// Package store persists application data as flat JSON files under a data
// directory: tasks.json and users.json hold arrays, weather.json and
// settings.json hold objects. Writes are pretty-printed so the files stay
// hand-editable, and a single mutex serializes read-modify-write cycles
// across the stores sharing a DB.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	tasksFile    = "tasks.json"
	usersFile    = "users.json"
	weatherFile  = "weather.json"
	settingsFile = "settings.json"
)

// DB is a handle on the data directory shared by all stores.
type DB struct {
	mu  sync.Mutex
	dir string
}

// Open ensures the data directory exists and initializes any missing data
// files with their empty shape.
func Open(dir string) (*DB, error) {
	if dir == "" {
		return nil, errors.New("data directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db := &DB{dir: dir}
	defaults := []struct {
		name  string
		empty any
	}{
		{tasksFile, []any{}},
		{usersFile, []any{}},
		{weatherFile, map[string]any{}},
		{settingsFile, map[string]any{}},
	}
	for _, d := range defaults {
		path := db.path(d.name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := db.writeFile(d.name, d.empty); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return db, nil
}

// Dir returns the data directory path.
func (db *DB) Dir() string {
	return db.dir
}

func (db *DB) path(name string) string {
	return filepath.Join(db.dir, name)
}

// readFile decodes the named JSON file into out. A missing file decodes as
// if it held the empty value.
func (db *DB) readFile(name string, out any) error {
	data, err := os.ReadFile(db.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (db *DB) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(db.path(name), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
