package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"outings/internal/core"
	"outings/internal/events"
	"outings/internal/types"
)

// EventLister is the events service surface the handler consumes.
type EventLister interface {
	List(ctx context.Context, window events.Window) ([]types.Event, error)
}

// EventsHandler serves the imported local-events feed.
type EventsHandler struct {
	service EventLister
	logger  *slog.Logger
}

// NewEventsHandler creates the handler.
func NewEventsHandler(service EventLister, l *slog.Logger) *EventsHandler {
	if l == nil {
		l = slog.Default()
	}
	return &EventsHandler{service: service, logger: l}
}

// RegisterRoutes mounts the event endpoints under /v1.
func (h *EventsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.List)
}

// List handles GET /v1/events?window=today|week|weekend.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("window")
	window, ok := events.ParseWindow(raw)
	if !ok {
		core.Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidWindow,
			"window must be one of today, week, weekend",
			nil,
			map[string]any{"window": raw},
		))
		return
	}

	items, err := h.service.List(r.Context(), window)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	if items == nil {
		items = []types.Event{}
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: items})
}
