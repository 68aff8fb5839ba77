package store

// SettingsStore persists application settings in settings.json.
type SettingsStore struct {
	db *DB
}

func NewSettingsStore(db *DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// All returns every setting.
func (s *SettingsStore) All() (map[string]any, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	settings := map[string]any{}
	if err := s.db.readFile(settingsFile, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Get returns the value for key and whether it exists.
func (s *SettingsStore) Get(key string) (any, bool, error) {
	settings, err := s.All()
	if err != nil {
		return nil, false, err
	}
	v, ok := settings[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (s *SettingsStore) Set(key string, value any) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	settings := map[string]any{}
	if err := s.db.readFile(settingsFile, &settings); err != nil {
		return err
	}
	settings[key] = value
	return s.db.writeFile(settingsFile, settings)
}

// Delete removes key and reports whether it was present.
func (s *SettingsStore) Delete(key string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	settings := map[string]any{}
	if err := s.db.readFile(settingsFile, &settings); err != nil {
		return false, err
	}
	if _, ok := settings[key]; !ok {
		return false, nil
	}
	delete(settings, key)
	return true, s.db.writeFile(settingsFile, settings)
}
