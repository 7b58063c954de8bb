package engine

import (
	"time"

	"outings/internal/hours"
	"outings/internal/types"
)

// closingSoonWindow: a venue closing this soon is not worth the drive.
const closingSoonWindow = 2 * time.Hour

// filterValid drops candidates with missing or non-finite coordinates.
func filterValid(activities []types.Activity) []types.Activity {
	kept := activities[:0:0]
	for _, a := range activities {
		if a.Location.Valid() {
			kept = append(kept, a)
		}
	}
	return kept
}

// filterAvailable drops candidates that are closed right now or closing
// within two hours. It applies only to immediate requests; candidates with no
// schedule are never dropped.
func filterAvailable(activities []types.Activity, eval *hours.Evaluator) []types.Activity {
	kept := activities[:0:0]
	for _, a := range activities {
		if a.OpenHours == nil {
			kept = append(kept, a)
			continue
		}
		if !eval.IsOpenNow(a.OpenHours) {
			continue
		}
		if eval.ClosesWithin(a.OpenHours, closingSoonWindow) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
