package weather

import (
	"testing"
	"time"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/store"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	db, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return NewService(store.NewWeatherStore(db), ttl)
}

func TestCurrentCachesWithinTTL(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	first, cached, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cached {
		t.Error("first call reported cached")
	}

	svc.now = func() time.Time { return base.Add(time.Minute) }
	second, cached, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !cached {
		t.Error("second call within TTL not cached")
	}
	if second.Temperature != first.Temperature || second.Condition != first.Condition {
		t.Errorf("cached reading differs: %+v vs %+v", second, first)
	}
}

func TestCurrentRegeneratesAfterTTL(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	if _, _, err := svc.Current("London"); err != nil {
		t.Fatalf("Current: %v", err)
	}

	svc.now = func() time.Time { return base.Add(10 * time.Minute) }
	fresh, cached, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cached {
		t.Error("expired entry still reported cached")
	}
	if !fresh.Timestamp.Equal(base.Add(10 * time.Minute)) {
		t.Errorf("fresh Timestamp = %v, want %v", fresh.Timestamp, base.Add(10*time.Minute))
	}
}

func TestCurrentSeparateLocations(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)

	london, _, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	paris, _, err := svc.Current("Paris")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if london.Location != "London" || paris.Location != "Paris" {
		t.Errorf("locations mixed up: %q, %q", london.Location, paris.Location)
	}
}

func TestGeneratedValuesInRange(t *testing.T) {
	svc := newTestService(t, time.Minute)

	for i := 0; i < 50; i++ {
		w := svc.generate("Test")
		if w.Temperature < 10 || w.Temperature > 35 {
			t.Fatalf("Temperature %v out of range", w.Temperature)
		}
		if w.Humidity < 30 || w.Humidity > 90 {
			t.Fatalf("Humidity %v out of range", w.Humidity)
		}
		if w.WindSpeed < 0 || w.WindSpeed > 50 {
			t.Fatalf("WindSpeed %v out of range", w.WindSpeed)
		}
		if w.Pressure < 980 || w.Pressure > 1030 {
			t.Fatalf("Pressure %v out of range", w.Pressure)
		}
		if !w.Condition.IsValid() {
			t.Fatalf("invalid condition %q", w.Condition)
		}
	}
}

func TestForecast(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)

	forecast, err := svc.Forecast("London", 3)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(forecast) != 3 {
		t.Fatalf("got %d days, want 3", len(forecast))
	}

	for i := 1; i < len(forecast); i++ {
		if !forecast[i].Timestamp.After(forecast[i-1].Timestamp) {
			t.Errorf("day %d timestamp %v not after day %d", i, forecast[i].Timestamp, i-1)
		}
	}
	if got, want := forecast[2].Temperature, forecast[0].Temperature+1.0; got != want {
		t.Errorf("day 2 temperature = %v, want %v", got, want)
	}
}

func TestForecastDoesNotMutateCache(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)

	before, _, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if _, err := svc.Forecast("London", MaxForecastDays); err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	after, cached, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !cached {
		t.Fatal("cache entry lost after forecast")
	}
	if after.Temperature != before.Temperature {
		t.Errorf("forecast mutated cached reading: %v vs %v", after.Temperature, before.Temperature)
	}
}

func TestForecastDaysBounds(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)

	for _, days := range []int{0, -1, MaxForecastDays + 1} {
		if _, err := svc.Forecast("London", days); !models.IsValidation(err) {
			t.Errorf("Forecast(days=%d): expected validation error, got %v", days, err)
		}
	}

	if _, err := svc.Forecast("London", MaxForecastDays); err != nil {
		t.Errorf("Forecast(days=%d): %v", MaxForecastDays, err)
	}
}

func TestClearCache(t *testing.T) {
	svc := newTestService(t, time.Hour)

	if _, _, err := svc.Current("London"); err != nil {
		t.Fatalf("Current: %v", err)
	}
	if err := svc.ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	_, cached, err := svc.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if cached {
		t.Error("reading still cached after ClearCache")
	}
}
