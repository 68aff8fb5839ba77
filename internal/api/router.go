package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/jordanhale/taskdeck/internal/store"
	"github.com/jordanhale/taskdeck/internal/tasks"
	"github.com/jordanhale/taskdeck/internal/weather"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	taskSvc *tasks.Service,
	weatherSvc *weather.Service,
	userStore *store.UserStore,
	settingsStore *store.SettingsStore,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	taskH := NewTaskHandler(taskSvc)
	weatherH := NewWeatherHandler(weatherSvc)
	userH := NewUserHandler(userStore)
	adminH := NewAdminHandler(taskSvc, userStore, settingsStore)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskH.List)
			r.Post("/", taskH.Create)
			r.Get("/categories", taskH.Categories)
			r.Get("/statistics", taskH.Statistics)
			r.Get("/{id}", taskH.Get)
			r.Put("/{id}", taskH.Update)
			r.Delete("/{id}", taskH.Delete)
		})

		r.Route("/weather", func(r chi.Router) {
			r.Post("/cache/clear", weatherH.ClearCache)
			r.Get("/{location}", weatherH.Current)
			r.Get("/{location}/forecast", weatherH.Forecast)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userH.List)
			r.Post("/", userH.Create)
			r.Get("/{id}", userH.Get)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/health", adminH.Health)
			r.Get("/settings", adminH.GetSettings)
			r.Post("/settings", adminH.UpdateSetting)
		})
	})

	return r
}
