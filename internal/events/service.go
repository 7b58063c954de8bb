// Package events surfaces the imported local-events feed alongside
// recommendations. It owns only window math; storage is the event store.
package events

import (
	"context"
	"time"

	"outings/internal/types"
)

// Window selects the time range an events listing covers.
type Window string

const (
	WindowToday   Window = "today"
	WindowWeek    Window = "week"
	WindowWeekend Window = "weekend"
)

// ParseWindow normalizes a query value, defaulting to WindowToday.
func ParseWindow(v string) (Window, bool) {
	switch Window(v) {
	case WindowToday, "":
		return WindowToday, true
	case WindowWeek:
		return WindowWeek, true
	case WindowWeekend:
		return WindowWeekend, true
	default:
		return "", false
	}
}

// Service lists events for a window anchored at the household clock.
type Service struct {
	store types.EventStore
	clock types.Clock
	loc   *time.Location
	limit int
}

// NewService creates an events Service. limit caps each listing.
func NewService(store types.EventStore, clock types.Clock, loc *time.Location, limit int) *Service {
	if limit <= 0 {
		limit = 50
	}
	return &Service{store: store, clock: clock, loc: loc, limit: limit}
}

// List returns events overlapping the window, soonest first.
func (s *Service) List(ctx context.Context, window Window) ([]types.Event, error) {
	start, end := s.bounds(window)
	return s.store.ListWithin(ctx, start, end, s.limit)
}

// bounds computes the window's time range in the household zone. "today"
// reaches an hour back so in-progress events still show; "week" covers the
// seven days starting tomorrow; "weekend" covers the upcoming Saturday
// through Sunday night.
func (s *Service) bounds(window Window) (time.Time, time.Time) {
	now := s.clock.Now().In(s.loc)
	switch window {
	case WindowWeek:
		start := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.loc)
		return start, start.AddDate(0, 0, 7)
	case WindowWeekend:
		// On Sunday this rolls forward to the next Saturday.
		sat := now.AddDate(0, 0, 1)
		if now.Weekday() == time.Saturday {
			sat = now
		}
		for sat.Weekday() != time.Saturday {
			sat = sat.AddDate(0, 0, 1)
		}
		start := time.Date(sat.Year(), sat.Month(), sat.Day(), 0, 0, 0, 0, s.loc)
		return start, start.AddDate(0, 0, 2)
	default:
		return now.Add(-time.Hour), now.Add(8 * time.Hour)
	}
}
