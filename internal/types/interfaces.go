package types

import (
	"context"
	"time"
)

// ActivityStore reads the household's activity catalog. A failing store
// degrades to an empty candidate pool at the engine level; it is never fatal.
type ActivityStore interface {
	List(ctx context.Context) ([]Activity, error)
}

// LogStore reads and appends completed-outing logs. ListRecent returns logs
// newest first; a 200-row window is enough for novelty scoring.
type LogStore interface {
	ListRecent(ctx context.Context, maxCount int) ([]ActivityLog, error)
	Insert(ctx context.Context, log *ActivityLog) error
}

// PreferenceStore reads and writes per-category preference weights.
type PreferenceStore interface {
	List(ctx context.Context) ([]CategoryPreference, error)
	Upsert(ctx context.Context, category string, weight float64) (*CategoryPreference, error)
}

// EventStore reads the imported local-events feed for a time window.
type EventStore interface {
	ListWithin(ctx context.Context, start, end time.Time, limit int) ([]Event, error)
}

// WeatherProvider supplies current conditions and day-level forecasts.
// Implementations must degrade to safe defaults instead of failing: a
// recommendation is never blocked because weather is unavailable.
type WeatherProvider interface {
	// CurrentOrNear returns conditions for now, or roughly three hours out
	// when when == WhenLater. The returned snapshot is never nil.
	CurrentOrNear(ctx context.Context, when When) *WeatherSnapshot

	// TodayHighLow returns today's forecast summary, or nil when no source
	// is reachable.
	TodayHighLow(ctx context.Context) *ForecastDay

	// Weekend returns forecast summaries for the upcoming (or in-progress)
	// weekend days, possibly empty.
	Weekend(ctx context.Context) []ForecastDay
}

// TravelEstimator returns drive time in seconds between two coordinates.
// Implementations fall back to a straight-line estimate when the routing
// upstream is unreachable, so errors are rare but still possible (e.g.
// context cancellation).
type TravelEstimator interface {
	DriveSeconds(ctx context.Context, origin, dest Location) (float64, error)
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the real system time (always UTC).
type RealClock struct{}

// Now returns the current UTC time.
func (RealClock) Now() time.Time { return time.Now().UTC() }

// FixedClock implements Clock with a pinned instant. It backs the FAKE_NOW
// configuration override used for demos and deterministic testing.
type FixedClock struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time { return c.Instant }
