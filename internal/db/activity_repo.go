package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"outings/internal/hours"
	"outings/internal/types"
)

// ActivityRepository provides read access to the activities table. It
// implements types.ActivityStore.
type ActivityRepository struct {
	db DBTX
}

// NewActivityRepository creates an ActivityRepository backed by the given
// connection (pool or transaction).
func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// activityColumns is the standard column set for activity queries. The scan
// order in scanActivity must match.
const activityColumns = `a.id, a.name, a.category, a.description,
	a.lat, a.lon,
	a.min_age_months, a.max_age_months, a.duration_min,
	a.open_hours, a.weather_flags, a.cost_tier, a.tags`

// scanActivity scans a single activity row. Rows with a NULL coordinate are
// reported via the second return value and excluded by the caller; a
// malformed open_hours document degrades to "hours unknown" rather than
// failing the whole list.
func scanActivity(row pgx.Row) (*types.Activity, bool, error) {
	var a types.Activity
	var (
		description *string
		lat, lon    *float64
		openHours   []byte
		costTier    *int
	)

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Category,
		&description,
		&lat,
		&lon,
		&a.MinAgeMonths,
		&a.MaxAgeMonths,
		&a.DurationMin,
		&openHours,
		&a.WeatherFlags,
		&costTier,
		&a.Tags,
	)
	if err != nil {
		return nil, false, err
	}

	if lat == nil || lon == nil {
		return nil, false, nil
	}
	a.Location = types.Location{Lat: *lat, Lon: *lon}

	if description != nil {
		a.Description = *description
	}
	if costTier != nil {
		a.CostTier = *costTier
	}
	if len(openHours) > 0 {
		var sched hours.Schedule
		if jsonErr := json.Unmarshal(openHours, &sched); jsonErr == nil {
			a.OpenHours = sched
		}
	}

	return &a, true, nil
}

// List returns every activity in the catalog that has a usable coordinate.
func (r *ActivityRepository) List(ctx context.Context) ([]types.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities a ORDER BY a.id`, activityColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list activities", err)
	}
	defer rows.Close()

	var activities []types.Activity
	for rows.Next() {
		a, ok, err := scanActivity(rows)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan activity row", err)
		}
		if !ok {
			continue
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "activity row iteration failed", err)
	}

	return activities, nil
}
