package external

import (
	"context"
	"fmt"
	"net/http"

	"outings/internal/types"
)

// NWSClient fetches daily forecast periods from the National Weather Service
// API. NWS is the primary source for day-level highs and lows; Open-Meteo is
// the fallback.
type NWSClient struct {
	base     *BaseClient
	baseURL  string
	location types.Location
}

// NewNWSClient creates an NWSClient pinned to the household's coordinate.
// NWS requires a descriptive User-Agent with a contact address.
func NewNWSClient(httpClient *http.Client, baseURL, userAgent string, loc types.Location, opts ...BaseClientOption) *NWSClient {
	return &NWSClient{
		base:     NewBaseClient(httpClient, "nws", DefaultRetryPolicy(), userAgent, opts...),
		baseURL:  baseURL,
		location: loc,
	}
}

// ForecastPeriod is one NWS forecast period (roughly half a day).
type ForecastPeriod struct {
	StartTime       string  `json:"startTime"` // RFC 3339 with zone offset
	IsDaytime       bool    `json:"isDaytime"`
	Temperature     float64 `json:"temperature"`
	TemperatureUnit string  `json:"temperatureUnit"`
	ShortForecast   string  `json:"shortForecast"`
	PrecipProb      struct {
		Value *float64 `json:"value"`
	} `json:"probabilityOfPrecipitation"`
}

type nwsPointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type nwsForecastResponse struct {
	Properties struct {
		Periods []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// Periods resolves the forecast grid for the household point and returns its
// forecast periods.
func (c *NWSClient) Periods(ctx context.Context) ([]ForecastPeriod, error) {
	pointsURL := fmt.Sprintf("%s/points/%g,%g", c.baseURL, c.location.Lat, c.location.Lon)

	var points nwsPointsResponse
	if err := c.base.getJSON(ctx, pointsURL, &points); err != nil {
		return nil, err
	}
	if points.Properties.Forecast == "" {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			"nws points response carried no forecast url", nil)
	}

	var forecast nwsForecastResponse
	if err := c.base.getJSON(ctx, points.Properties.Forecast, &forecast); err != nil {
		return nil, err
	}
	if len(forecast.Properties.Periods) == 0 {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			"nws forecast returned no periods", nil)
	}
	return forecast.Properties.Periods, nil
}
