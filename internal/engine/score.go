package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"outings/internal/geo"
	"outings/internal/types"
)

// categoryDecayDays is how long repeating a category keeps being penalized.
// Categories not listed use defaultDecayDays.
var categoryDecayDays = map[string]int{
	"park":    3,
	"splash":  3,
	"walk":    2,
	"library": 5,
	"museum":  10,
	"indoor":  5,
}

const defaultDecayDays = 5

// Novelty and composite-score weights.
const (
	exactRepeatPenalty    = 0.6
	categoryRepeatPenalty = 0.3

	preferenceWeight = 40.0
	weatherWeight    = 25.0
	noveltyWeight    = 15.0
	distanceWeight   = 10.0
	baseScore        = 10.0

	distancePenaltyMiles = 12.0
	closeByMiles         = 3.0
	likedThreshold       = 0.6
)

// conditions is the weather view the scorer evaluates a candidate against.
// The immediate and weekend paths differ in their rain penalty and phrasing,
// so the strings travel with the booleans.
type conditions struct {
	raining bool
	hot     bool
	cold    bool

	rainPenalty float64
	rainReason  string
	// indoorReason is empty on paths that note nothing for a dry-day
	// indoor pick.
	indoorReason string
	hotReason    string
	coldReason   string
	closeFormat  string
}

func nowConditions(snap *types.WeatherSnapshot) conditions {
	return conditions{
		raining:      snap.IsRaining,
		hot:          snap.IsHot,
		cold:         snap.IsCold,
		rainPenalty:  0.7,
		rainReason:   "Rain: prefer indoor",
		indoorReason: "Indoor OK today",
		hotReason:    "Hot: water/shade",
		coldReason:   "Cold: indoor",
		closeFormat:  "Close by (%.1f mi)",
	}
}

func weekendConditions(rainy, hot, cold bool) conditions {
	return conditions{
		raining:     rainy,
		hot:         hot,
		cold:        cold,
		rainPenalty: 0.6,
		rainReason:  "Rain likely: indoor better",
		hotReason:   "Hot: water/shade good",
		coldReason:  "Cold: indoor",
		closeFormat: "Close (%.1f mi)",
	}
}

// recency indexes the most recent log per activity and per category.
type recency struct {
	byActivity map[int64]time.Time
	byCategory map[string]time.Time
}

// buildRecency folds the recent logs into lookup maps. Logs arrive newest
// first, so only the first hit per key is kept.
func buildRecency(logs []types.ActivityLog, activities []types.Activity) recency {
	categoryByID := make(map[int64]string, len(activities))
	for i := range activities {
		categoryByID[activities[i].ID] = activities[i].Category
	}

	rec := recency{
		byActivity: make(map[int64]time.Time),
		byCategory: make(map[string]time.Time),
	}
	for _, log := range logs {
		if _, seen := rec.byActivity[log.ActivityID]; !seen {
			rec.byActivity[log.ActivityID] = log.StartedAt
		}
		if cat, ok := categoryByID[log.ActivityID]; ok {
			if _, seen := rec.byCategory[cat]; !seen {
				rec.byCategory[cat] = log.StartedAt
			}
		}
	}
	return rec
}

// decayWindowDays returns the repetition decay window for a category.
func decayWindowDays(category string) float64 {
	if days, ok := categoryDecayDays[category]; ok {
		return float64(days)
	}
	return defaultDecayDays
}

// scorer computes composite scores against a fixed home coordinate and a
// pinned "now".
type scorer struct {
	home types.Location
	now  time.Time
}

// score produces the ScoredCandidate for one activity. Reasons accumulate in
// a fixed order: weather, novelty, preference, distance, cost.
func (s scorer) score(a types.Activity, cond conditions, rec recency, prefs map[string]float64) types.ScoredCandidate {
	var reasons []string

	// Weather fit.
	weatherFit := 1.0
	switch {
	case cond.raining && !a.IsIndoor():
		weatherFit -= cond.rainPenalty
		reasons = append(reasons, cond.rainReason)
	case !cond.raining && a.IsIndoor():
		if cond.indoorReason != "" {
			reasons = append(reasons, cond.indoorReason)
		}
	}
	if cond.hot && (a.HasFlag(types.FlagWater) || a.HasFlag(types.FlagShade)) {
		reasons = append(reasons, cond.hotReason)
	}
	if cond.cold && a.IsIndoor() {
		reasons = append(reasons, cond.coldReason)
	}

	// Novelty.
	novelty := 1.0
	window := decayWindowDays(a.Category)
	if last, ok := rec.byActivity[a.ID]; ok && s.daysSince(last) < window {
		days := s.daysSince(last)
		novelty -= exactRepeatPenalty * (1 - days/window)
		reasons = append(reasons, fmt.Sprintf("Did recently (%dd ago)", wholeDaysAgo(days)))
	} else if last, ok := rec.byCategory[a.Category]; ok && s.daysSince(last) < window {
		days := s.daysSince(last)
		novelty -= categoryRepeatPenalty * (1 - days/window)
		reasons = append(reasons, fmt.Sprintf("Similar recently (%dd)", wholeDaysAgo(days)))
	} else {
		reasons = append(reasons, "Nice change of pace")
	}

	// Preference.
	pref, ok := prefs[a.Category]
	if !ok {
		pref = types.DefaultPreferenceWeight
	}
	if pref > likedThreshold {
		reasons = append(reasons, fmt.Sprintf("You like %s", a.Category))
	}

	// Distance.
	distance := geo.DistanceMiles(s.home, a.Location)
	distancePenalty := math.Min(1, distance/distancePenaltyMiles)
	if distance < closeByMiles {
		reasons = append(reasons, fmt.Sprintf(cond.closeFormat, distance))
	}

	if a.CostTier == 0 {
		reasons = append(reasons, "Free")
	}

	score := preferenceWeight*pref +
		weatherWeight*math.Max(0, weatherFit) +
		noveltyWeight*math.Max(0, novelty) +
		distanceWeight*(1-distancePenalty) +
		baseScore

	return types.ScoredCandidate{
		Activity:   a,
		Score:      score,
		Reasons:    reasons,
		DistanceMi: distance,
	}
}

func (s scorer) daysSince(t time.Time) float64 {
	return s.now.Sub(t).Hours() / 24
}

// wholeDaysAgo renders a fractional day count for reasons: floored, but a
// same-day repeat still reads "1d".
func wholeDaysAgo(days float64) int {
	if days < 1 {
		return 1
	}
	return int(math.Floor(days))
}

// rank scores every candidate and stable-sorts descending by score, so ties
// keep catalog order.
func (s scorer) rank(candidates []types.Activity, cond conditions, rec recency, prefs map[string]float64) []types.ScoredCandidate {
	scored := make([]types.ScoredCandidate, 0, len(candidates))
	for _, a := range candidates {
		scored = append(scored, s.score(a, cond, rec, prefs))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
