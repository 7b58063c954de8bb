// Package engine is the recommendation core: it filters the activity catalog
// by availability, scores each candidate on weather fit, novelty, preference,
// and distance, applies an outdoor/indoor diversity quota, and enriches the
// final picks with drive time and today's hours.
package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"outings/internal/hours"
	"outings/internal/types"
)

// Thresholds for the weather-derived allocation inputs.
const (
	heavyRainPct    = 90.0
	comfortablePct  = 10.0
	comfortableMinF = 60.0
	comfortableMaxF = 80.0
	weekendRainyPct = 50.0
)

// Defaults applied when the weekend forecast is empty.
const (
	weekendDefaultHighF = 75.0
	weekendDefaultLowF  = 50.0
	weekendDefaultPct   = 20.0
)

// Options configures a Service.
type Options struct {
	Home         types.Location
	DefaultLimit int
	WeekendLimit int
	LogWindow    int
}

// Service runs recommendation requests. All state is per-request; the
// Service itself is safe for concurrent use.
type Service struct {
	activities types.ActivityStore
	logs       types.LogStore
	prefs      types.PreferenceStore
	weather    types.WeatherProvider
	travel     types.TravelEstimator
	eval       *hours.Evaluator
	clock      types.Clock
	opts       Options
	logger     *slog.Logger
}

// New creates a recommendation Service.
func New(
	activities types.ActivityStore,
	logs types.LogStore,
	prefs types.PreferenceStore,
	weather types.WeatherProvider,
	travel types.TravelEstimator,
	eval *hours.Evaluator,
	clock types.Clock,
	opts Options,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 5
	}
	if opts.WeekendLimit <= 0 {
		opts.WeekendLimit = 6
	}
	if opts.LogWindow <= 0 {
		opts.LogWindow = 200
	}
	return &Service{
		activities: activities,
		logs:       logs,
		prefs:      prefs,
		weather:    weather,
		travel:     travel,
		eval:       eval,
		clock:      clock,
		opts:       opts,
		logger:     logger,
	}
}

// Recommendation is the immediate-request response.
type Recommendation struct {
	When    types.When              `json:"when"`
	Weather *types.WeatherSnapshot  `json:"weather"`
	Today   *types.ForecastDay      `json:"today,omitempty"`
	Results []types.ScoredCandidate `json:"results"`
}

// WeekendRecommendation is the forward-looking response.
type WeekendRecommendation struct {
	Weekend []types.ForecastDay     `json:"weekend"`
	Results []types.ScoredCandidate `json:"results"`
}

// inputs is the jointly-awaited first wave of reads for a request.
type inputs struct {
	activities []types.Activity
	logs       []types.ActivityLog
	prefs      map[string]float64
}

// gather reads the three stores concurrently. A failing store degrades to an
// empty slice so the caller always gets a response.
func (s *Service) gather(ctx context.Context) inputs {
	var in inputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		activities, err := s.activities.List(gctx)
		if err != nil {
			s.logger.WarnContext(gctx, "activity store unavailable, recommending from empty catalog",
				slog.String("error", err.Error()))
			return nil
		}
		in.activities = activities
		return nil
	})
	g.Go(func() error {
		logs, err := s.logs.ListRecent(gctx, s.opts.LogWindow)
		if err != nil {
			s.logger.WarnContext(gctx, "log store unavailable, skipping novelty history",
				slog.String("error", err.Error()))
			return nil
		}
		in.logs = logs
		return nil
	})
	g.Go(func() error {
		prefs, err := s.prefs.List(gctx)
		if err != nil {
			s.logger.WarnContext(gctx, "preference store unavailable, using default weights",
				slog.String("error", err.Error()))
			return nil
		}
		in.prefs = make(map[string]float64, len(prefs))
		for _, p := range prefs {
			in.prefs[p.Category] = p.Weight
		}
		return nil
	})

	_ = g.Wait() // goroutines never return errors
	if in.prefs == nil {
		in.prefs = map[string]float64{}
	}
	return in
}

// Recommend ranks activities for right now or a few hours out.
func (s *Service) Recommend(ctx context.Context, when types.When, limit int) (*Recommendation, error) {
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}

	var (
		in    inputs
		snap  *types.WeatherSnapshot
		today *types.ForecastDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		in = s.gather(gctx)
		return nil
	})
	g.Go(func() error {
		snap = s.weather.CurrentOrNear(gctx, when)
		return nil
	})
	g.Go(func() error {
		today = s.weather.TodayHighLow(gctx)
		return nil
	})
	_ = g.Wait()

	candidates := filterValid(in.activities)
	if when == types.WhenNow {
		candidates = filterAvailable(candidates, s.eval)
	}

	sc := scorer{home: s.opts.Home, now: s.clock.Now()}
	rec := buildRecency(in.logs, in.activities)
	ranked := sc.rank(candidates, nowConditions(snap), rec, in.prefs)

	high := snap.TempF
	heavyRain := snap.PrecipProb > heavyRainPct
	if today != nil {
		high = today.TempMaxF
		heavyRain = heavyRain || today.PrecipProbMax > heavyRainPct
	}
	// Comfort keys off the current probability, not the daily max: a dry
	// morning before afternoon storms still favors outdoor picks.
	comfortable := !snap.IsRaining && snap.PrecipProb <= comfortablePct &&
		high >= comfortableMinF && high <= comfortableMaxF

	selected := allocate(ranked, limit, comfortable, heavyRain)
	enrich(ctx, selected, s.opts.Home, s.travel, s.eval, s.logger)

	return &Recommendation{
		When:    when,
		Weather: snap,
		Today:   today,
		Results: selected,
	}, nil
}

// RecommendWeekend ranks activities for the upcoming weekend using the
// aggregated weekend forecast instead of current conditions.
func (s *Service) RecommendWeekend(ctx context.Context, limit int) (*WeekendRecommendation, error) {
	if limit <= 0 {
		limit = s.opts.WeekendLimit
	}

	var (
		in      inputs
		weekend []types.ForecastDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		in = s.gather(gctx)
		return nil
	})
	g.Go(func() error {
		weekend = s.weather.Weekend(gctx)
		return nil
	})
	_ = g.Wait()

	avgHigh, minLow, maxPop := summarizeWeekend(weekend)
	rainy := maxPop >= weekendRainyPct
	hot := avgHigh >= types.HotTempF
	cold := minLow <= types.ColdTempF

	candidates := filterValid(in.activities)
	sc := scorer{home: s.opts.Home, now: s.clock.Now()}
	rec := buildRecency(in.logs, in.activities)
	ranked := sc.rank(candidates, weekendConditions(rainy, hot, cold), rec, in.prefs)

	heavyRain := maxPop > heavyRainPct
	comfortable := !rainy && maxPop <= comfortablePct &&
		avgHigh >= comfortableMinF && avgHigh <= comfortableMaxF

	selected := allocate(ranked, limit, comfortable, heavyRain)
	enrich(ctx, selected, s.opts.Home, s.travel, s.eval, s.logger)

	return &WeekendRecommendation{
		Weekend: weekend,
		Results: selected,
	}, nil
}

// summarizeWeekend aggregates the weekend days into the values the scorer
// and allocator consume, with mild defaults when the forecast is empty.
func summarizeWeekend(days []types.ForecastDay) (avgHigh, minLow, maxPop float64) {
	if len(days) == 0 {
		return weekendDefaultHighF, weekendDefaultLowF, weekendDefaultPct
	}
	minLow = days[0].TempMinF
	for _, d := range days {
		avgHigh += d.TempMaxF
		if d.TempMinF < minLow {
			minLow = d.TempMinF
		}
		if d.PrecipProbMax > maxPop {
			maxPop = d.PrecipProbMax
		}
	}
	avgHigh /= float64(len(days))
	return avgHigh, minLow, maxPop
}
