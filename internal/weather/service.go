// Package weather merges the NWS and Open-Meteo clients into the single
// provider the recommendation engine consumes. NWS is the primary source for
// day-level summaries; Open-Meteo backs hourly conditions and serves as the
// daily fallback. Every lookup degrades to a safe default instead of failing.
package weather

import (
	"context"
	"log/slog"
	"time"

	"outings/internal/external"
	"outings/internal/types"
)

// laterOffset is how far ahead "later" looks when picking the target hour.
const laterOffset = 3 * time.Hour

// Default day-level values used when a source omits a field.
const (
	defaultHighF     = 75.0
	defaultLowF      = 50.0
	defaultPrecipPct = 20.0
)

// wetCodes are the WMO weather codes treated as rain regardless of the
// precipitation probability (drizzle, rain, freezing rain, snow, showers,
// thunderstorms).
var wetCodes = map[int]bool{
	51: true, 53: true, 55: true,
	61: true, 63: true, 65: true,
	66: true, 67: true,
	71: true, 73: true, 75: true, 77: true,
	80: true, 81: true, 82: true,
	85: true, 86: true,
	95: true, 96: true, 99: true,
}

// ForecastSource is the Open-Meteo surface the service needs.
type ForecastSource interface {
	Hourly(ctx context.Context) (*external.HourlyForecast, error)
	Daily(ctx context.Context, startDate, endDate string) (*external.DailyForecast, error)
}

// PeriodSource is the NWS surface the service needs.
type PeriodSource interface {
	Periods(ctx context.Context) ([]external.ForecastPeriod, error)
}

// Service implements types.WeatherProvider.
type Service struct {
	forecasts ForecastSource
	periods   PeriodSource
	clock     types.Clock
	loc       *time.Location
	logger    *slog.Logger
}

// NewService creates a weather Service. periods may be nil, in which case
// day-level summaries come from forecasts alone.
func NewService(forecasts ForecastSource, periods PeriodSource, clock types.Clock, loc *time.Location, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		forecasts: forecasts,
		periods:   periods,
		clock:     clock,
		loc:       loc,
		logger:    logger,
	}
}

// CurrentOrNear returns conditions for the current hour, or about three hours
// out when when == WhenLater. On any upstream problem it returns a mild
// default snapshot rather than an error.
func (s *Service) CurrentOrNear(ctx context.Context, when types.When) *types.WeatherSnapshot {
	target := s.clock.Now().In(s.loc)
	if when == types.WhenLater {
		target = target.Add(laterOffset)
	}

	hourly, err := s.forecasts.Hourly(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "hourly forecast unavailable, using default conditions",
			slog.String("error", err.Error()))
		return defaultSnapshot(target)
	}

	// Open-Meteo returns zone-local timestamps like "2026-09-05T14:00";
	// match on the hour prefix.
	hourKey := target.Format("2006-01-02T15")
	for i, ts := range hourly.Time {
		if len(ts) < len(hourKey) || ts[:len(hourKey)] != hourKey {
			continue
		}
		snap := &types.WeatherSnapshot{At: target}
		if at, parseErr := time.ParseInLocation("2006-01-02T15:04", ts, s.loc); parseErr == nil {
			snap.At = at
		}
		if i < len(hourly.TemperatureF) {
			snap.TempF = hourly.TemperatureF[i]
		}
		if i < len(hourly.PrecipProb) {
			snap.PrecipProb = hourly.PrecipProb[i]
		}
		if i < len(hourly.WindSpeedMph) {
			snap.WindMph = hourly.WindSpeedMph[i]
		}
		if i < len(hourly.WeatherCode) {
			snap.Code = hourly.WeatherCode[i]
		}
		snap.IsRaining = wetCodes[snap.Code] || snap.PrecipProb >= types.RainingPrecipPct
		snap.IsHot = snap.TempF >= types.HotTempF
		snap.IsCold = snap.TempF <= types.ColdTempF
		return snap
	}

	s.logger.WarnContext(ctx, "target hour missing from hourly forecast, using default conditions",
		slog.String("hour", hourKey))
	return defaultSnapshot(target)
}

// TodayHighLow returns today's forecast summary from NWS, falling back to
// Open-Meteo, or nil when neither source answers.
func (s *Service) TodayHighLow(ctx context.Context) *types.ForecastDay {
	today := s.clock.Now().In(s.loc)
	dateStr := today.Format("2006-01-02")

	if s.periods != nil {
		if periods, err := s.periods.Periods(ctx); err == nil {
			if day, ok := summarizeDate(periods, dateStr, today.Weekday(), s.loc); ok {
				return day
			}
		} else {
			s.logger.WarnContext(ctx, "nws forecast unavailable, falling back to open-meteo",
				slog.String("error", err.Error()))
		}
	}

	daily, err := s.forecasts.Daily(ctx, dateStr, dateStr)
	if err != nil {
		s.logger.WarnContext(ctx, "daily forecast unavailable",
			slog.String("error", err.Error()))
		return nil
	}
	days := dailyToDays(daily, s.loc)
	for i := range days {
		if days[i].Date == dateStr {
			return &days[i]
		}
	}
	return nil
}

// Weekend returns forecast summaries for the upcoming weekend. On a Saturday
// that is today and tomorrow; on a Sunday just today; otherwise the next
// Saturday and Sunday. Unreachable sources yield an empty slice.
func (s *Service) Weekend(ctx context.Context) []types.ForecastDay {
	now := s.clock.Now().In(s.loc)
	dates := weekendDates(now)

	if s.periods != nil {
		if periods, err := s.periods.Periods(ctx); err == nil {
			days := make([]types.ForecastDay, 0, len(dates))
			for _, d := range dates {
				if day, ok := summarizeDate(periods, d.Format("2006-01-02"), d.Weekday(), s.loc); ok {
					days = append(days, *day)
				}
			}
			if len(days) > 0 {
				return days
			}
		} else {
			s.logger.WarnContext(ctx, "nws forecast unavailable, falling back to open-meteo",
				slog.String("error", err.Error()))
		}
	}

	start := dates[0].Format("2006-01-02")
	end := dates[len(dates)-1].Format("2006-01-02")
	daily, err := s.forecasts.Daily(ctx, start, end)
	if err != nil {
		s.logger.WarnContext(ctx, "daily forecast unavailable",
			slog.String("error", err.Error()))
		return nil
	}

	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[d.Format("2006-01-02")] = true
	}
	var days []types.ForecastDay
	for _, day := range dailyToDays(daily, s.loc) {
		if wanted[day.Date] {
			days = append(days, day)
		}
	}
	return days
}

// weekendDates returns the local dates the weekend forecast covers, in order.
func weekendDates(now time.Time) []time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch now.Weekday() {
	case time.Saturday:
		return []time.Time{day, day.AddDate(0, 0, 1)}
	case time.Sunday:
		return []time.Time{day}
	default:
		daysUntilSat := int(time.Saturday - now.Weekday())
		sat := day.AddDate(0, 0, daysUntilSat)
		return []time.Time{sat, sat.AddDate(0, 0, 1)}
	}
}

// summarizeDate folds the NWS periods that fall on the given local date into
// one ForecastDay. ok is false when no period matches.
func summarizeDate(periods []external.ForecastPeriod, dateStr string, weekday time.Weekday, loc *time.Location) (*types.ForecastDay, bool) {
	day := types.ForecastDay{
		Date:          dateStr,
		DayName:       weekday.String(),
		TempMaxF:      defaultHighF,
		TempMinF:      defaultLowF,
		PrecipProbMax: defaultPrecipPct,
	}

	var matched, haveHigh, haveLow, havePrecip bool
	for _, p := range periods {
		start, err := time.Parse(time.RFC3339, p.StartTime)
		if err != nil || start.In(loc).Format("2006-01-02") != dateStr {
			continue
		}
		matched = true

		temp := p.Temperature
		if p.TemperatureUnit == "C" {
			temp = temp*9/5 + 32
		}
		if p.IsDaytime {
			if !haveHigh || temp > day.TempMaxF {
				day.TempMaxF = temp
				haveHigh = true
			}
			if day.Summary == "" {
				day.Summary = p.ShortForecast
			}
		} else {
			if !haveLow || temp < day.TempMinF {
				day.TempMinF = temp
				haveLow = true
			}
		}
		if p.PrecipProb.Value != nil {
			if !havePrecip || *p.PrecipProb.Value > day.PrecipProbMax {
				day.PrecipProbMax = *p.PrecipProb.Value
				havePrecip = true
			}
		}
	}
	if !matched {
		return nil, false
	}
	return &day, true
}

// dailyToDays converts an Open-Meteo daily response into ForecastDay values.
func dailyToDays(daily *external.DailyForecast, loc *time.Location) []types.ForecastDay {
	days := make([]types.ForecastDay, 0, len(daily.Time))
	for i, dateStr := range daily.Time {
		day := types.ForecastDay{
			Date:          dateStr,
			TempMaxF:      defaultHighF,
			TempMinF:      defaultLowF,
			PrecipProbMax: defaultPrecipPct,
		}
		if d, err := time.ParseInLocation("2006-01-02", dateStr, loc); err == nil {
			day.DayName = d.Weekday().String()
		}
		if i < len(daily.TempMaxF) {
			day.TempMaxF = daily.TempMaxF[i]
		}
		if i < len(daily.TempMinF) {
			day.TempMinF = daily.TempMinF[i]
		}
		if i < len(daily.PrecipProbMax) {
			day.PrecipProbMax = daily.PrecipProbMax[i]
		}
		if i < len(daily.WeatherCode) {
			day.Code = daily.WeatherCode[i]
		}
		days = append(days, day)
	}
	return days
}

// defaultSnapshot is the mild-conditions fallback used when no hourly data is
// available.
func defaultSnapshot(at time.Time) *types.WeatherSnapshot {
	return &types.WeatherSnapshot{
		At:         at,
		TempF:      72,
		PrecipProb: 5,
		WindMph:    4,
		Code:       0,
	}
}
