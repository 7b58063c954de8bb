package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outings/internal/engine"
	"outings/internal/types"
)

type fakeRecommender struct {
	when    types.When
	limit   int
	rec     *engine.Recommendation
	weekend *engine.WeekendRecommendation
	err     error
}

func (f *fakeRecommender) Recommend(ctx context.Context, when types.When, limit int) (*engine.Recommendation, error) {
	f.when, f.limit = when, limit
	return f.rec, f.err
}

func (f *fakeRecommender) RecommendWeekend(ctx context.Context, limit int) (*engine.WeekendRecommendation, error) {
	f.limit = limit
	return f.weekend, f.err
}

func newRecRouter(f *fakeRecommender) http.Handler {
	r := chi.NewRouter()
	NewRecommendationsHandler(f, nil).RegisterRoutes(r)
	return r
}

func TestGetRecommendations(t *testing.T) {
	f := &fakeRecommender{rec: &engine.Recommendation{
		When:    types.WhenNow,
		Weather: &types.WeatherSnapshot{TempF: 72},
		Results: []types.ScoredCandidate{
			{Activity: types.Activity{ID: 1, Name: "Umstead Park"}, Score: 85.5},
		},
	}}

	w := httptest.NewRecorder()
	newRecRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations?when=now&limit=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.WhenNow, f.when)
	assert.Equal(t, 3, f.limit)

	var resp struct {
		Data engine.Recommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "Umstead Park", resp.Data.Results[0].Activity.Name)
}

func TestGetRecommendations_LaterHint(t *testing.T) {
	f := &fakeRecommender{rec: &engine.Recommendation{When: types.WhenLater}}

	w := httptest.NewRecorder()
	newRecRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations?when=later", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.WhenLater, f.when)
	assert.Equal(t, 0, f.limit) // engine default
}

func TestGetRecommendations_UnknownWhenDefaultsToNow(t *testing.T) {
	f := &fakeRecommender{rec: &engine.Recommendation{}}

	w := httptest.NewRecorder()
	newRecRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations?when=yesterday", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.WhenNow, f.when)
}

func TestGetRecommendations_InvalidLimit(t *testing.T) {
	for _, limit := range []string{"abc", "0", "-2", "100"} {
		f := &fakeRecommender{rec: &engine.Recommendation{}}
		w := httptest.NewRecorder()
		newRecRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations?limit="+limit, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
		assert.Contains(t, w.Body.String(), "validation_invalid_limit")
	}
}

func TestGetWeekendRecommendations(t *testing.T) {
	f := &fakeRecommender{weekend: &engine.WeekendRecommendation{
		Weekend: []types.ForecastDay{{Date: "2026-09-05", DayName: "Saturday"}},
		Results: []types.ScoredCandidate{{Activity: types.Activity{ID: 2}}},
	}}

	w := httptest.NewRecorder()
	newRecRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations/weekend?limit=6", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, f.limit)

	var resp struct {
		Data engine.WeekendRecommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Weekend, 1)
	assert.Equal(t, "Saturday", resp.Data.Weekend[0].DayName)
}

func TestGetRecommendations_EngineError(t *testing.T) {
	f := &fakeRecommender{err: types.NewAppError(types.ErrCodeInternalDB, "query failed", nil)}

	w := httptest.NewRecorder()
	newRecRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_database_error")
}
