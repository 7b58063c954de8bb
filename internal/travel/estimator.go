// Package travel estimates driving time from the household to an activity.
// It asks an OSRM-style router first and falls back to a straight-line
// estimate at a configurable average speed when routing is unavailable, so a
// recommendation is never blocked on the routing upstream.
package travel

import (
	"context"
	"log/slog"
	"math"

	"outings/internal/geo"
	"outings/internal/types"
)

// Router resolves a driving duration between two points.
type Router interface {
	RouteSeconds(ctx context.Context, origin, dest types.Location) (float64, error)
}

// Estimator implements types.TravelEstimator on top of a Router with a
// distance-based fallback.
type Estimator struct {
	router      Router
	fallbackMph float64
	logger      *slog.Logger
}

// NewEstimator creates an Estimator. router may be nil, in which case every
// estimate uses the fallback. fallbackMph must be positive.
func NewEstimator(router Router, fallbackMph float64, logger *slog.Logger) *Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{
		router:      router,
		fallbackMph: fallbackMph,
		logger:      logger,
	}
}

// DriveSeconds returns the estimated driving duration in seconds from origin
// to dest. Routing failures degrade to the straight-line fallback rather than
// surfacing an error.
func (e *Estimator) DriveSeconds(ctx context.Context, origin, dest types.Location) (float64, error) {
	if e.router != nil {
		seconds, err := e.router.RouteSeconds(ctx, origin, dest)
		if err == nil {
			return seconds, nil
		}
		e.logger.WarnContext(ctx, "routing unavailable, using straight-line fallback",
			slog.String("error", err.Error()))
	}
	return e.fallbackSeconds(origin, dest), nil
}

func (e *Estimator) fallbackSeconds(origin, dest types.Location) float64 {
	miles := geo.DistanceMiles(origin, dest)
	if math.IsNaN(miles) || e.fallbackMph <= 0 {
		return 0
	}
	return miles / e.fallbackMph * 3600
}
