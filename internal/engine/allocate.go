package engine

import (
	"math"

	"outings/internal/types"
)

// Outdoor share of the result list, weather-dependent.
const (
	comfortableOutdoorShare = 0.75
	defaultOutdoorShare     = 0.25
)

// allocate applies the outdoor/indoor diversity quota to the ranked list.
// Under heavy rain only indoor candidates survive. Otherwise the list is
// split by class quota and backfilled from the full ranking when a class runs
// short.
func allocate(ranked []types.ScoredCandidate, limit int, comfortable, heavyRain bool) []types.ScoredCandidate {
	if limit <= 0 || len(ranked) == 0 {
		return nil
	}

	if heavyRain {
		selected := make([]types.ScoredCandidate, 0, limit)
		for _, c := range ranked {
			if !c.Activity.IsIndoor() {
				continue
			}
			selected = append(selected, c)
			if len(selected) == limit {
				break
			}
		}
		return selected
	}

	share := defaultOutdoorShare
	if comfortable {
		share = comfortableOutdoorShare
	}
	outdoorTarget := int(math.Round(float64(limit) * share))
	indoorTarget := limit - outdoorTarget

	selected := make([]types.ScoredCandidate, 0, limit)
	taken := make(map[int64]bool, limit)
	outdoor, indoor := 0, 0
	for _, c := range ranked {
		if c.Activity.IsIndoor() {
			if indoor == indoorTarget {
				continue
			}
			indoor++
		} else {
			if outdoor == outdoorTarget {
				continue
			}
			outdoor++
		}
		selected = append(selected, c)
		taken[c.Activity.ID] = true
	}

	// Backfill from the full ranking when a class ran out.
	for _, c := range ranked {
		if len(selected) >= limit {
			break
		}
		if taken[c.Activity.ID] {
			continue
		}
		selected = append(selected, c)
		taken[c.Activity.ID] = true
	}

	if len(selected) > limit {
		selected = selected[:limit]
	}
	return selected
}
