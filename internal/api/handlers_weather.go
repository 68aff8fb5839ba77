package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/weather"
)

type WeatherHandler struct {
	svc *weather.Service
}

func NewWeatherHandler(svc *weather.Service) *WeatherHandler {
	return &WeatherHandler{svc: svc}
}

// Current handles GET /api/weather/{location}.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")

	reading, cached, err := h.svc.Current(location)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"weather":   reading,
		"cached":    cached,
		"timestamp": timestamp(),
	})
}

// Forecast handles GET /api/weather/{location}/forecast.
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")

	days := 5
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a number")
			return
		}
		days = n
	}

	forecast, err := h.svc.Forecast(location, days)
	if err != nil {
		if models.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"location":  location,
		"forecast":  forecast,
		"days":      days,
		"timestamp": timestamp(),
	})
}

// ClearCache handles POST /api/weather/cache/clear.
func (h *WeatherHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearCache(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Weather cache cleared successfully"})
}
