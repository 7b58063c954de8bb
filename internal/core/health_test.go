package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	name string
	err  error
}

func (p *fakeProbe) Name() string                    { return p.name }
func (p *fakeProbe) Check(ctx context.Context) error { return p.err }

func TestHandleHealth_NoProbes(t *testing.T) {
	s := testServer(t)

	w := httptest.NewRecorder()
	s.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestHandleHealth_AllHealthy(t *testing.T) {
	s := testServer(t)
	s.HealthProbes = []HealthProbe{&fakeProbe{name: "database"}}

	w := httptest.NewRecorder()
	s.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status     string `json:"status"`
		Components map[string]struct {
			Status string `json:"status"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Components["database"].Status)
}

func TestHandleHealth_UnhealthyProbe(t *testing.T) {
	s := testServer(t)
	s.HealthProbes = []HealthProbe{
		&fakeProbe{name: "database", err: errors.New("connection refused")},
	}

	w := httptest.NewRecorder()
	s.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHandleHealth_PanickingProbe(t *testing.T) {
	s := testServer(t)
	s.HealthProbes = []HealthProbe{&panicProbe{}}

	w := httptest.NewRecorder()
	s.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "probe panicked")
}

type panicProbe struct{}

func (p *panicProbe) Name() string                    { return "flaky" }
func (p *panicProbe) Check(ctx context.Context) error { panic("probe bug") }
