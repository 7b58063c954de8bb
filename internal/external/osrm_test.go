package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outings/internal/types"
)

func TestOSRMClient_RouteSeconds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// OSRM wants longitude first.
		assert.Equal(t, "/route/v1/driving/-79.05,35.91;-78.9,35.99", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("overview"))
		w.Write([]byte(`{"routes":[{"duration":754.3}]}`))
	}))
	defer server.Close()

	c := NewOSRMClient(http.DefaultClient, server.URL, "Outings-Test/1.0", WithSleepFunc(noSleep))

	seconds, err := c.RouteSeconds(context.Background(),
		types.Location{Lat: 35.91, Lon: -79.05},
		types.Location{Lat: 35.99, Lon: -78.9})
	require.NoError(t, err)
	assert.InDelta(t, 754.3, seconds, 0.001)
}

func TestOSRMClient_NoRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer server.Close()

	c := NewOSRMClient(http.DefaultClient, server.URL, "Outings-Test/1.0", WithSleepFunc(noSleep))

	_, err := c.RouteSeconds(context.Background(), types.Location{}, types.Location{})
	require.Error(t, err)
	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamRouting, appErr.Code)
}

func TestOSRMClient_NegativeDuration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[{"duration":-5}]}`))
	}))
	defer server.Close()

	c := NewOSRMClient(http.DefaultClient, server.URL, "Outings-Test/1.0", WithSleepFunc(noSleep))

	_, err := c.RouteSeconds(context.Background(), types.Location{}, types.Location{})
	require.Error(t, err)
}
