// Package types defines the shared domain model for the Outings service:
// activities, activity logs, category preferences, weather data, and the
// error/context plumbing used across packages.
package types

import (
	"math"
	"time"

	"outings/internal/hours"
)

// Location is a geographic coordinate.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether both coordinates are finite. Rows with missing or
// non-finite coordinates are excluded from the candidate pool outright.
func (l Location) Valid() bool {
	return !math.IsNaN(l.Lat) && !math.IsInf(l.Lat, 0) &&
		!math.IsNaN(l.Lon) && !math.IsInf(l.Lon, 0)
}

// Weather-affinity flags an activity may carry.
const (
	FlagIndoor = "indoor"
	FlagWater  = "water"
	FlagShade  = "shade"
)

// Activity is a place or thing a household can do. It is read-only to the
// recommendation engine; edits happen through seeding and admin tooling.
type Activity struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Description  string         `json:"description,omitempty"`
	Location     Location       `json:"location"`
	MinAgeMonths *int           `json:"min_age_months,omitempty"`
	MaxAgeMonths *int           `json:"max_age_months,omitempty"`
	DurationMin  *int           `json:"duration_min,omitempty"`
	OpenHours    hours.Schedule `json:"open_hours,omitempty"`
	WeatherFlags []string       `json:"weather_flags,omitempty"`
	CostTier     int            `json:"cost_tier"`
	Tags         []string       `json:"tags,omitempty"`
}

// HasFlag reports whether the activity carries the given weather-affinity flag.
func (a *Activity) HasFlag(flag string) bool {
	for _, f := range a.WeatherFlags {
		if f == flag {
			return true
		}
	}
	return false
}

// IsIndoor classifies the activity for diversity allocation. Anything without
// the indoor flag counts as outdoor.
func (a *Activity) IsIndoor() bool {
	return a.HasFlag(FlagIndoor)
}

// ActivityLog records one completed outing. Logs are immutable once written
// and are read back only for novelty scoring, newest first.
type ActivityLog struct {
	ID          int64     `json:"id"`
	ActivityID  int64     `json:"activity_id"`
	StartedAt   time.Time `json:"started_at"`
	DurationMin *int      `json:"duration_min,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Who         string    `json:"who,omitempty"`
}

// DefaultPreferenceWeight is assumed for any category without a stored
// preference row.
const DefaultPreferenceWeight = 0.5

// CategoryPreference is the caregiver's stated weight for a category, in [0,1].
type CategoryPreference struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
}

// ScoredCandidate is a ranked activity with its score breakdown artifacts.
// It is built fresh per request and never persisted.
type ScoredCandidate struct {
	Activity   Activity `json:"activity"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
	DistanceMi float64  `json:"distance_mi"`

	// Populated by enrichment.
	DriveMinutes int    `json:"drive_minutes,omitempty"`
	HoursText    string `json:"hours_text,omitempty"`
}

// Event is an entry from the imported local-events feed. Events are shown
// alongside recommendations but do not participate in scoring.
type Event struct {
	ID           int64      `json:"id"`
	Source       string     `json:"source"`
	SourceID     string     `json:"source_id,omitempty"`
	Title        string     `json:"title"`
	URL          string     `json:"url,omitempty"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	EndAt        *time.Time `json:"end_at,omitempty"`
	TimeText     string     `json:"time_text,omitempty"`
	CostText     string     `json:"cost_text,omitempty"`
	LocationText string     `json:"location_text,omitempty"`
	IsFree       bool       `json:"is_free"`
}
