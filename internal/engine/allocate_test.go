package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outings/internal/types"
)

// ranked builds a pre-ranked candidate list; scores descend in input order.
func rankedPool(indoorFlags ...bool) []types.ScoredCandidate {
	out := make([]types.ScoredCandidate, len(indoorFlags))
	for i, indoor := range indoorFlags {
		a := types.Activity{ID: int64(i + 1), Category: "park"}
		if indoor {
			a.WeatherFlags = []string{types.FlagIndoor}
		}
		out[i] = types.ScoredCandidate{Activity: a, Score: float64(100 - i)}
	}
	return out
}

func countIndoor(selected []types.ScoredCandidate) (indoor, outdoor int) {
	for _, c := range selected {
		if c.Activity.IsIndoor() {
			indoor++
		} else {
			outdoor++
		}
	}
	return indoor, outdoor
}

func TestAllocate_HeavyRainExcludesOutdoor(t *testing.T) {
	pool := rankedPool(false, false, true, false, true, false, true, true, false, false)

	selected := allocate(pool, 4, false, true)
	require.Len(t, selected, 4)
	indoor, outdoor := countIndoor(selected)
	assert.Equal(t, 4, indoor)
	assert.Equal(t, 0, outdoor)
	// Top 4 indoor by rank: IDs 3, 5, 7, 8.
	assert.Equal(t, int64(3), selected[0].Activity.ID)
	assert.Equal(t, int64(8), selected[3].Activity.ID)
}

func TestAllocate_ComfortableDayFavorsOutdoor(t *testing.T) {
	// 6 outdoor, 4 indoor.
	pool := rankedPool(false, true, false, true, false, false, true, false, true, false)

	selected := allocate(pool, 4, true, false)
	require.Len(t, selected, 4)
	indoor, outdoor := countIndoor(selected)
	assert.Equal(t, 3, outdoor) // round(4 * 0.75)
	assert.Equal(t, 1, indoor)
}

func TestAllocate_DefaultDayFavorsIndoor(t *testing.T) {
	pool := rankedPool(false, true, false, true, false, false, true, false, true, false)

	selected := allocate(pool, 4, false, false)
	require.Len(t, selected, 4)
	indoor, outdoor := countIndoor(selected)
	assert.Equal(t, 1, outdoor) // round(4 * 0.25)
	assert.Equal(t, 3, indoor)
}

func TestAllocate_BackfillsWhenClassRunsOut(t *testing.T) {
	// All outdoor: the indoor quota cannot be met, backfill keeps rank order.
	pool := rankedPool(false, false, false, false, false)

	selected := allocate(pool, 4, false, false)
	require.Len(t, selected, 4)
	assert.Equal(t, int64(1), selected[0].Activity.ID)
	for i := 1; i < len(selected); i++ {
		assert.Greater(t, selected[i-1].Score, selected[i].Score)
	}
}

func TestAllocate_HeavyRainWithNoIndoorIsEmpty(t *testing.T) {
	pool := rankedPool(false, false, false)
	assert.Empty(t, allocate(pool, 4, false, true))
}

func TestAllocate_ShortPoolReturnsEverything(t *testing.T) {
	pool := rankedPool(false, true)
	selected := allocate(pool, 5, true, false)
	assert.Len(t, selected, 2)
}

func TestAllocate_ZeroLimit(t *testing.T) {
	assert.Nil(t, allocate(rankedPool(false, true), 0, false, false))
	assert.Nil(t, allocate(nil, 4, false, false))
}
