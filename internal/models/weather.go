package models

import "time"

// Weather is a point-in-time weather reading for a location.
type Weather struct {
	Location    string           `json:"location"`
	Temperature float64          `json:"temperature"` // °C
	Condition   WeatherCondition `json:"condition"`
	Humidity    float64          `json:"humidity"`   // %
	WindSpeed   float64          `json:"wind_speed"` // km/h
	Pressure    float64          `json:"pressure"`   // hPa
	Visibility  float64          `json:"visibility"` // km
	Timestamp   time.Time        `json:"timestamp"`
}

// TemperatureFahrenheit converts the reading to Fahrenheit.
func (w *Weather) TemperatureFahrenheit() float64 {
	return w.Temperature*9/5 + 32
}

// GoodForOutdoors reports whether conditions suit outdoor activities:
// sunny or cloudy, 15-30 °C, wind below 20 km/h.
func (w *Weather) GoodForOutdoors() bool {
	if w.Condition != ConditionSunny && w.Condition != ConditionCloudy {
		return false
	}
	return w.Temperature >= 15 && w.Temperature <= 30 && w.WindSpeed < 20
}
