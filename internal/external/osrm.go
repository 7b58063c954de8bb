package external

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"outings/internal/types"
)

// OSRMClient fetches driving durations from an OSRM routing server.
type OSRMClient struct {
	base    *BaseClient
	baseURL string
}

// NewOSRMClient creates an OSRMClient against the given OSRM base URL.
func NewOSRMClient(httpClient *http.Client, baseURL, userAgent string, opts ...BaseClientOption) *OSRMClient {
	return &OSRMClient{
		base:    NewBaseClient(httpClient, "osrm", DefaultRetryPolicy(), userAgent, opts...),
		baseURL: baseURL,
	}
}

type osrmRouteResponse struct {
	Routes []struct {
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// RouteSeconds returns the driving duration in seconds from origin to dest.
// OSRM coordinates are longitude-first.
func (c *OSRMClient) RouteSeconds(ctx context.Context, origin, dest types.Location) (float64, error) {
	routeURL := fmt.Sprintf("%s/route/v1/driving/%g,%g;%g,%g?overview=false",
		c.baseURL, origin.Lon, origin.Lat, dest.Lon, dest.Lat)

	var resp osrmRouteResponse
	if err := c.base.getJSON(ctx, routeURL, &resp); err != nil {
		return 0, err
	}
	if len(resp.Routes) == 0 {
		return 0, types.NewAppError(types.ErrCodeUpstreamRouting,
			"osrm returned no routes", nil)
	}
	duration := resp.Routes[0].Duration
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, types.NewAppError(types.ErrCodeUpstreamRouting,
			"osrm returned a non-finite duration", nil)
	}
	return duration, nil
}
