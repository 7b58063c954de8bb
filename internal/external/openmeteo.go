package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"outings/internal/types"
)

// OpenMeteoClient fetches hourly and daily forecasts from the Open-Meteo API.
// Open-Meteo requires no API key and returns times in the requested IANA
// zone, which keeps hour matching simple.
type OpenMeteoClient struct {
	base     *BaseClient
	baseURL  string
	location types.Location
	timezone string
}

// NewOpenMeteoClient creates an OpenMeteoClient pinned to the household's
// coordinate and time zone.
func NewOpenMeteoClient(httpClient *http.Client, baseURL, userAgent string, loc types.Location, timezone string, opts ...BaseClientOption) *OpenMeteoClient {
	return &OpenMeteoClient{
		base:     NewBaseClient(httpClient, "open-meteo", DefaultRetryPolicy(), userAgent, opts...),
		baseURL:  baseURL,
		location: loc,
		timezone: timezone,
	}
}

// HourlyForecast mirrors the hourly arrays of the Open-Meteo response. All
// slices are index-aligned with Time.
type HourlyForecast struct {
	Time         []string  `json:"time"` // local "2006-01-02T15:04"
	TemperatureF []float64 `json:"temperature_2m"`
	PrecipProb   []float64 `json:"precipitation_probability"`
	WeatherCode  []int     `json:"weathercode"`
	WindSpeedMph []float64 `json:"windspeed_10m"`
}

// DailyForecast mirrors the daily arrays of the Open-Meteo response.
type DailyForecast struct {
	Time          []string  `json:"time"` // local "2006-01-02"
	TempMaxF      []float64 `json:"temperature_2m_max"`
	TempMinF      []float64 `json:"temperature_2m_min"`
	PrecipProbMax []float64 `json:"precipitation_probability_max"`
	WeatherCode   []int     `json:"weathercode"`
}

type openMeteoResponse struct {
	Hourly *HourlyForecast `json:"hourly,omitempty"`
	Daily  *DailyForecast  `json:"daily,omitempty"`
}

// Hourly fetches the hourly forecast (temperature °F, precipitation
// probability, weather code, wind mph) for the household location.
func (c *OpenMeteoClient) Hourly(ctx context.Context) (*HourlyForecast, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", c.location.Lat))
	params.Set("longitude", fmt.Sprintf("%g", c.location.Lon))
	params.Set("hourly", "temperature_2m,precipitation_probability,weathercode,windspeed_10m")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("windspeed_unit", "mph")
	params.Set("timezone", c.timezone)

	var resp openMeteoResponse
	if err := c.base.getJSON(ctx, c.baseURL+"/v1/forecast?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Hourly == nil || len(resp.Hourly.Time) == 0 {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			"open-meteo returned no hourly data", nil)
	}
	return resp.Hourly, nil
}

// Daily fetches daily high/low/precipitation summaries for the inclusive
// local date range [startDate, endDate] ("YYYY-MM-DD").
func (c *OpenMeteoClient) Daily(ctx context.Context, startDate, endDate string) (*DailyForecast, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%g", c.location.Lat))
	params.Set("longitude", fmt.Sprintf("%g", c.location.Lon))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weathercode")
	params.Set("temperature_unit", "fahrenheit")
	params.Set("timezone", c.timezone)
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)

	var resp openMeteoResponse
	if err := c.base.getJSON(ctx, c.baseURL+"/v1/forecast?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Daily == nil || len(resp.Daily.Time) == 0 {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			"open-meteo returned no daily data", nil)
	}
	return resp.Daily, nil
}
