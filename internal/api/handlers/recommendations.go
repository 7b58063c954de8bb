// Package handlers contains the HTTP handler implementations for the Outings
// API: recommendations, activity logs, category preferences, and the local
// events feed. Handlers depend on narrow local interfaces so tests can inject
// fakes without touching the concrete services.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"outings/internal/core"
	"outings/internal/engine"
	"outings/internal/types"
)

// maxLimit caps the requested result count on all listing endpoints.
const maxLimit = 20

// Recommender is the engine surface the recommendations handler consumes.
type Recommender interface {
	Recommend(ctx context.Context, when types.When, limit int) (*engine.Recommendation, error)
	RecommendWeekend(ctx context.Context, limit int) (*engine.WeekendRecommendation, error)
}

// RecommendationsHandler serves GET /v1/recommendations and its weekend
// variant.
type RecommendationsHandler struct {
	engine Recommender
	logger *slog.Logger
}

// NewRecommendationsHandler creates the handler.
func NewRecommendationsHandler(eng Recommender, l *slog.Logger) *RecommendationsHandler {
	if l == nil {
		l = slog.Default()
	}
	return &RecommendationsHandler{engine: eng, logger: l}
}

// RegisterRoutes mounts the recommendation endpoints under /v1.
func (h *RecommendationsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/weekend", h.GetWeekend)
	})
}

// Get handles GET /v1/recommendations?when=now|later&limit=N.
func (h *RecommendationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	when := types.ParseWhen(r.URL.Query().Get("when"))
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	rec, err := h.engine.Recommend(r.Context(), when, limit)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: rec})
}

// GetWeekend handles GET /v1/recommendations/weekend?limit=N.
func (h *RecommendationsHandler) GetWeekend(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	rec, err := h.engine.RecommendWeekend(r.Context(), limit)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: rec})
}

// parseLimit parses an optional limit query value. Zero means "use the
// engine default"; anything non-numeric, negative, or above maxLimit is a
// validation error.
func parseLimit(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidLimit,
			"limit must be an integer between 1 and 20",
			err,
			map[string]any{"limit": v},
		)
	}
	return limit, nil
}
