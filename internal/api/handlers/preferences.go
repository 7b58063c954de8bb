package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"outings/internal/core"
	"outings/internal/types"
)

// PreferencesHandler reads and writes per-category preference weights.
type PreferencesHandler struct {
	store     types.PreferenceStore
	validator *core.Validator
	logger    *slog.Logger
}

// NewPreferencesHandler creates the handler.
func NewPreferencesHandler(store types.PreferenceStore, v *core.Validator, l *slog.Logger) *PreferencesHandler {
	if l == nil {
		l = slog.Default()
	}
	return &PreferencesHandler{store: store, validator: v, logger: l}
}

// RegisterRoutes mounts the preference endpoints under /v1.
func (h *PreferencesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/preferences", func(r chi.Router) {
		r.Get("/", h.List)
		r.Put("/", h.Upsert)
	})
}

// List handles GET /v1/preferences.
func (h *PreferencesHandler) List(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.store.List(r.Context())
	if err != nil {
		core.Error(w, r, err)
		return
	}
	if prefs == nil {
		prefs = []types.CategoryPreference{}
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: prefs})
}

// UpsertPreferenceRequest is the request body for PUT /v1/preferences.
type UpsertPreferenceRequest struct {
	Category string  `json:"category" validate:"required,max=50"`
	Weight   float64 `json:"weight" validate:"gte=0,lte=1"`
}

// Upsert handles PUT /v1/preferences.
func (h *PreferencesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertPreferenceRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	pref, err := h.store.Upsert(r.Context(), req.Category, req.Weight)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: pref})
}
