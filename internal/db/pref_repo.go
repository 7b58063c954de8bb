package db

import (
	"context"

	"outings/internal/types"
)

// PreferenceRepository provides access to the category_prefs table. It
// implements types.PreferenceStore. One row per category, enforced by a
// unique constraint.
type PreferenceRepository struct {
	db DBTX
}

// NewPreferenceRepository creates a PreferenceRepository backed by the given
// connection.
func NewPreferenceRepository(db DBTX) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// List returns all stored category preferences, ordered by category name.
// Categories without a row default to types.DefaultPreferenceWeight in the
// engine, so an empty result is normal for a fresh household.
func (r *PreferenceRepository) List(ctx context.Context) ([]types.CategoryPreference, error) {
	query := `SELECT p.id, p.category, p.weight FROM category_prefs p ORDER BY p.category`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list preferences", err)
	}
	defer rows.Close()

	var prefs []types.CategoryPreference
	for rows.Next() {
		var p types.CategoryPreference
		if err := rows.Scan(&p.ID, &p.Category, &p.Weight); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan preference row", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "preference row iteration failed", err)
	}

	return prefs, nil
}

// Upsert sets the weight for a category, inserting the row if absent, and
// returns the stored preference.
func (r *PreferenceRepository) Upsert(ctx context.Context, category string, weight float64) (*types.CategoryPreference, error) {
	query := `INSERT INTO category_prefs (category, weight)
		VALUES ($1, $2)
		ON CONFLICT (category) DO UPDATE SET weight = EXCLUDED.weight
		RETURNING id, category, weight`

	var p types.CategoryPreference
	err := r.db.QueryRow(ctx, query, category, weight).Scan(&p.ID, &p.Category, &p.Weight)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to upsert preference", err)
	}
	return &p, nil
}
