package dashboard

import (
	"time"

	"decora_festas/internal/domain/entities"
)

// SelectTarget deterministically picks the single most relevant record among
// the filtered results, to be brought into view on the calendar.
//
// Priority, first applicable rule wins:
//  1. date-range filter present: the record whose event start is closest to
//     now (minimum absolute difference), ties broken by filtered order;
//  2. client-substring filter present: first record in filtered order;
//  3. status filter present: first record in filtered order;
//  4. no active filter: no target.
//
// An empty filtered sequence yields no target; the caller shows the
// "no matches" overlay instead.
func SelectTarget(filtered []entities.Budget, spec FilterSpec, now time.Time) (entities.Budget, bool) {
	if len(filtered) == 0 || spec.IsEmpty() {
		return entities.Budget{}, false
	}

	if spec.HasDateRange() {
		best := filtered[0]
		bestDist := absDuration(best.EventStart().Sub(now))
		for _, b := range filtered[1:] {
			if d := absDuration(b.EventStart().Sub(now)); d < bestDist {
				best, bestDist = b, d
			}
		}
		return best, true
	}

	// Client-substring and status filters both take the first match.
	return filtered[0], true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
