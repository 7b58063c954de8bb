package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outings/internal/types"
)

type stubStore struct {
	start time.Time
	end   time.Time
	limit int
	items []types.Event
	err   error
}

func (s *stubStore) ListWithin(ctx context.Context, start, end time.Time, limit int) ([]types.Event, error) {
	s.start, s.end, s.limit = start, end, limit
	return s.items, s.err
}

func nyLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestParseWindow(t *testing.T) {
	for _, v := range []string{"", "today", "week", "weekend"} {
		_, ok := ParseWindow(v)
		assert.True(t, ok, v)
	}
	_, ok := ParseWindow("fortnight")
	assert.False(t, ok)
}

func TestList_TodayWindow(t *testing.T) {
	loc := nyLoc(t)
	now := time.Date(2026, 9, 2, 14, 0, 0, 0, loc) // Wednesday afternoon
	store := &stubStore{items: []types.Event{{ID: 1, Title: "Story Time"}}}
	s := NewService(store, types.FixedClock{Instant: now}, loc, 50)

	got, err := s.List(context.Background(), WindowToday)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, now.Add(-time.Hour), store.start)
	assert.Equal(t, now.Add(8*time.Hour), store.end)
	assert.Equal(t, 50, store.limit)
}

func TestList_WeekWindowStartsTomorrow(t *testing.T) {
	loc := nyLoc(t)
	now := time.Date(2026, 9, 2, 14, 0, 0, 0, loc)
	store := &stubStore{}
	s := NewService(store, types.FixedClock{Instant: now}, loc, 50)

	_, err := s.List(context.Background(), WindowWeek)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, loc), store.start)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, loc), store.end)
}

func TestList_WeekendWindow(t *testing.T) {
	loc := nyLoc(t)
	store := &stubStore{}

	// Midweek: next Saturday through Sunday night.
	s := NewService(store, types.FixedClock{Instant: time.Date(2026, 9, 2, 14, 0, 0, 0, loc)}, loc, 50)
	_, err := s.List(context.Background(), WindowWeekend)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, loc), store.start)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, loc), store.end)

	// Saturday: the in-progress weekend.
	s = NewService(store, types.FixedClock{Instant: time.Date(2026, 9, 5, 10, 0, 0, 0, loc)}, loc, 50)
	_, err = s.List(context.Background(), WindowWeekend)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, loc), store.start)

	// Sunday: the weekend is nearly over, roll to the next one.
	s = NewService(store, types.FixedClock{Instant: time.Date(2026, 9, 6, 10, 0, 0, 0, loc)}, loc, 50)
	_, err = s.List(context.Background(), WindowWeekend)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, loc), store.start)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, loc), store.end)
}

func TestNewService_DefaultLimit(t *testing.T) {
	loc := nyLoc(t)
	store := &stubStore{}
	s := NewService(store, types.FixedClock{Instant: time.Now()}, loc, 0)

	_, err := s.List(context.Background(), WindowToday)
	require.NoError(t, err)
	assert.Equal(t, 50, store.limit)
}
