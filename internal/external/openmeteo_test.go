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

func TestOpenMeteoClient_Hourly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "35.91", q.Get("latitude"))
		assert.Equal(t, "-79.05", q.Get("longitude"))
		assert.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		assert.Equal(t, "mph", q.Get("windspeed_unit"))
		assert.Equal(t, "America/New_York", q.Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"hourly": {
				"time": ["2026-09-05T09:00", "2026-09-05T10:00"],
				"temperature_2m": [68.5, 71.2],
				"precipitation_probability": [5, 10],
				"weathercode": [0, 2],
				"windspeed_10m": [3.1, 4.8]
			}
		}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(http.DefaultClient, server.URL, "Outings-Test/1.0",
		types.Location{Lat: 35.91, Lon: -79.05}, "America/New_York", WithSleepFunc(noSleep))

	hourly, err := c.Hourly(context.Background())
	require.NoError(t, err)
	require.Len(t, hourly.Time, 2)
	assert.Equal(t, "2026-09-05T09:00", hourly.Time[0])
	assert.InDelta(t, 71.2, hourly.TemperatureF[1], 0.001)
	assert.Equal(t, []int{0, 2}, hourly.WeatherCode)
}

func TestOpenMeteoClient_HourlyEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(http.DefaultClient, server.URL, "Outings-Test/1.0",
		types.Location{Lat: 35.91, Lon: -79.05}, "America/New_York", WithSleepFunc(noSleep))

	_, err := c.Hourly(context.Background())
	require.Error(t, err)
	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamWeather, appErr.Code)
}

func TestOpenMeteoClient_Daily(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2026-09-05", q.Get("start_date"))
		assert.Equal(t, "2026-09-06", q.Get("end_date"))

		w.Write([]byte(`{
			"daily": {
				"time": ["2026-09-05", "2026-09-06"],
				"temperature_2m_max": [78, 81],
				"temperature_2m_min": [58, 60],
				"precipitation_probability_max": [10, 60],
				"weathercode": [1, 61]
			}
		}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(http.DefaultClient, server.URL, "Outings-Test/1.0",
		types.Location{Lat: 35.91, Lon: -79.05}, "America/New_York", WithSleepFunc(noSleep))

	daily, err := c.Daily(context.Background(), "2026-09-05", "2026-09-06")
	require.NoError(t, err)
	require.Len(t, daily.Time, 2)
	assert.InDelta(t, 81, daily.TempMaxF[1], 0.001)
	assert.InDelta(t, 60, daily.PrecipProbMax[1], 0.001)
}
