package db

import (
	"context"
	"time"

	"outings/internal/types"
)

// EventRepository provides read access to the events table populated by the
// local-events import job. It implements types.EventStore.
type EventRepository struct {
	db DBTX
}

// NewEventRepository creates an EventRepository backed by the given connection.
func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// ListWithin returns events overlapping [start, end], ordered by start time.
// An event overlaps when it ends after the window opens and starts before the
// window closes.
func (r *EventRepository) ListWithin(ctx context.Context, start, end time.Time, limit int) ([]types.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT e.id, e.source, e.source_id, e.title, e.url,
		e.start_at, e.end_at, e.time_text, e.cost_text, e.location_text, e.is_free
		FROM events e
		WHERE e.end_at >= $1 AND e.start_at <= $2
		ORDER BY e.start_at
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list events", err)
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		var e types.Event
		var sourceID, url, timeText, costText, locationText *string
		err := rows.Scan(&e.ID, &e.Source, &sourceID, &e.Title, &url,
			&e.StartAt, &e.EndAt, &timeText, &costText, &locationText, &e.IsFree)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan event row", err)
		}
		if sourceID != nil {
			e.SourceID = *sourceID
		}
		if url != nil {
			e.URL = *url
		}
		if timeText != nil {
			e.TimeText = *timeText
		}
		if costText != nil {
			e.CostText = *costText
		}
		if locationText != nil {
			e.LocationText = *locationText
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "event row iteration failed", err)
	}

	return events, nil
}
