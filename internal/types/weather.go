package types

import "time"

// Temperature and precipitation thresholds used to derive the condition
// booleans on WeatherSnapshot and the weekend aggregates.
const (
	HotTempF         = 85.0
	ColdTempF        = 45.0
	RainingPrecipPct = 50.0
)

// WeatherSnapshot is a point-in-time weather summary for the household's
// service area. The derived booleans are what the scorer consumes; raw values
// are kept for display.
type WeatherSnapshot struct {
	At         time.Time `json:"at"`
	TempF      float64   `json:"temp_f"`
	PrecipProb float64   `json:"precip_prob"`
	WindMph    float64   `json:"wind_mph"`
	Code       int       `json:"code"`
	IsRaining  bool      `json:"is_raining"`
	IsHot      bool      `json:"is_hot"`
	IsCold     bool      `json:"is_cold"`
}

// ForecastDay is a single-day forecast summary (today's high/low or one
// weekend day).
type ForecastDay struct {
	Date          string  `json:"date"` // YYYY-MM-DD, household-local
	DayName       string  `json:"day_name"`
	TempMaxF      float64 `json:"temp_max_f"`
	TempMinF      float64 `json:"temp_min_f"`
	PrecipProbMax float64 `json:"precip_prob_max"`
	Code          int     `json:"code,omitempty"`
	Summary       string  `json:"summary,omitempty"`
}

// When selects the target time for an immediate recommendation request.
type When string

const (
	WhenNow   When = "now"
	WhenLater When = "later"
)

// ParseWhen normalizes a query value, defaulting to WhenNow.
func ParseWhen(v string) When {
	if When(v) == WhenLater {
		return WhenLater
	}
	return WhenNow
}
