package store

import (
	"github.com/jordanhale/taskdeck/internal/models"
)

// WeatherStore persists the weather cache in weather.json, keyed by
// location.
type WeatherStore struct {
	db *DB
}

func NewWeatherStore(db *DB) *WeatherStore {
	return &WeatherStore{db: db}
}

// Get returns the cached reading for location, or nil on a miss.
func (s *WeatherStore) Get(location string) (*models.Weather, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	cache := map[string]models.Weather{}
	if err := s.db.readFile(weatherFile, &cache); err != nil {
		return nil, err
	}
	if w, ok := cache[location]; ok {
		return &w, nil
	}
	return nil, nil
}

// Save stores the reading for location, replacing any previous entry.
func (s *WeatherStore) Save(location string, w *models.Weather) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	cache := map[string]models.Weather{}
	if err := s.db.readFile(weatherFile, &cache); err != nil {
		return err
	}
	cache[location] = *w
	return s.db.writeFile(weatherFile, cache)
}

// Clear drops every cached reading.
func (s *WeatherStore) Clear() error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.writeFile(weatherFile, map[string]models.Weather{})
}
