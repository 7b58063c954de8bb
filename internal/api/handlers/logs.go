package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"outings/internal/core"
	"outings/internal/types"
)

// LogsHandler records completed outings via POST /v1/logs.
type LogsHandler struct {
	store     types.LogStore
	clock     types.Clock
	validator *core.Validator
	logger    *slog.Logger
}

// NewLogsHandler creates the handler.
func NewLogsHandler(store types.LogStore, clock types.Clock, v *core.Validator, l *slog.Logger) *LogsHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LogsHandler{store: store, clock: clock, validator: v, logger: l}
}

// RegisterRoutes mounts the log endpoints under /v1.
func (h *LogsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/logs", h.Create)
}

// CreateLogRequest is the request body for POST /v1/logs. StartedAt defaults
// to the current time when omitted.
type CreateLogRequest struct {
	ActivityID  int64      `json:"activity_id" validate:"required,gt=0"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	DurationMin *int       `json:"duration_min,omitempty" validate:"omitempty,gt=0"`
	Rating      *int       `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Notes       string     `json:"notes,omitempty" validate:"max=1000"`
	Who         string     `json:"who,omitempty" validate:"max=100"`
}

// Create handles POST /v1/logs.
func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLogRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	startedAt := h.clock.Now()
	if req.StartedAt != nil {
		startedAt = *req.StartedAt
	}

	log := &types.ActivityLog{
		ActivityID:  req.ActivityID,
		StartedAt:   startedAt,
		DurationMin: req.DurationMin,
		Rating:      req.Rating,
		Notes:       req.Notes,
		Who:         req.Who,
	}
	if err := h.store.Insert(r.Context(), log); err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusCreated, core.APIResponse{Data: log})
}
