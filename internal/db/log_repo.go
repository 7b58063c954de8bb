package db

import (
	"context"
	"fmt"

	"outings/internal/types"
)

// LogRepository provides access to the activity_logs table. It implements
// types.LogStore. Logs are append-only; there is no update or delete path.
type LogRepository struct {
	db DBTX
}

// NewLogRepository creates a LogRepository backed by the given connection.
func NewLogRepository(db DBTX) *LogRepository {
	return &LogRepository{db: db}
}

const logColumns = `l.id, l.activity_id, l.started_at, l.duration_min, l.rating, l.notes, l.who`

// ListRecent returns up to maxCount logs, newest first. The engine only needs
// the most recent window for novelty scoring.
func (r *LogRepository) ListRecent(ctx context.Context, maxCount int) ([]types.ActivityLog, error) {
	if maxCount <= 0 {
		maxCount = 200
	}
	query := fmt.Sprintf(
		`SELECT %s FROM activity_logs l ORDER BY l.started_at DESC LIMIT $1`, logColumns)

	rows, err := r.db.Query(ctx, query, maxCount)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list activity logs", err)
	}
	defer rows.Close()

	var logs []types.ActivityLog
	for rows.Next() {
		var l types.ActivityLog
		var notes, who *string
		if err := rows.Scan(&l.ID, &l.ActivityID, &l.StartedAt, &l.DurationMin, &l.Rating, &notes, &who); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan log row", err)
		}
		if notes != nil {
			l.Notes = *notes
		}
		if who != nil {
			l.Who = *who
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "log row iteration failed", err)
	}

	return logs, nil
}

// Insert appends a new log entry and populates its generated ID.
func (r *LogRepository) Insert(ctx context.Context, log *types.ActivityLog) error {
	query := `INSERT INTO activity_logs (activity_id, started_at, duration_min, rating, notes, who)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		log.ActivityID,
		log.StartedAt,
		log.DurationMin,
		log.Rating,
		log.Notes,
		log.Who,
	).Scan(&log.ID)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalDB, "failed to insert activity log", err)
	}
	return nil
}
