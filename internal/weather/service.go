// Package weather serves mock weather readings with a TTL cache persisted
// through the weather store. Real API integration is a stated non-goal;
// the generated values stay within plausible ranges so the rest of the
// application behaves realistically.
package weather

import (
	"math/rand"
	"sync"
	"time"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/store"
)

// MaxForecastDays bounds forecast requests.
const MaxForecastDays = 7

// Service generates and caches weather readings per location.
type Service struct {
	mu    sync.Mutex
	store *store.WeatherStore
	ttl   time.Duration
	rng   *rand.Rand
	now   func() time.Time
}

func NewService(weatherStore *store.WeatherStore, ttl time.Duration) *Service {
	return &Service{
		store: weatherStore,
		ttl:   ttl,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
}

// Current returns the weather for location and whether it came from the
// cache. Cached readings older than the TTL are regenerated.
func (s *Service) Current(location string) (*models.Weather, bool, error) {
	cached, err := s.store.Get(location)
	if err != nil {
		return nil, false, err
	}
	if cached != nil && s.now().Sub(cached.Timestamp) < s.ttl {
		return cached, true, nil
	}

	w := s.generate(location)
	if err := s.store.Save(location, w); err != nil {
		return nil, false, err
	}
	return w, false, nil
}

// Forecast returns readings for the next days days. Days outside
// [1, MaxForecastDays] are a validation error.
func (s *Service) Forecast(location string, days int) ([]models.Weather, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, models.Invalid("days", "days must be between 1 and %d, got %d", MaxForecastDays, days)
	}

	base, _, err := s.Current(location)
	if err != nil {
		return nil, err
	}

	forecast := make([]models.Weather, 0, days)
	for i := 0; i < days; i++ {
		day := *base
		day.Temperature += float64(i) * 0.5
		day.Timestamp = base.Timestamp.AddDate(0, 0, i)
		forecast = append(forecast, day)
	}
	return forecast, nil
}

// ClearCache drops every cached reading.
func (s *Service) ClearCache() error {
	return s.store.Clear()
}

func (s *Service) generate(location string) *models.Weather {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.Weather{
		Location:    location,
		Temperature: s.inRange(10, 35),
		Condition:   models.AllConditions[s.rng.Intn(len(models.AllConditions))],
		Humidity:    s.inRange(30, 90),
		WindSpeed:   s.inRange(0, 50),
		Pressure:    s.inRange(980, 1030),
		Visibility:  s.inRange(5, 25),
		Timestamp:   s.now(),
	}
}

func (s *Service) inRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
