package dashboard

import (
	"strings"
	"time"

	"decora_festas/internal/domain/entities"
)

// FilterSpec is the set of optional predicates applied to the canonical
// collection. All fields are optional; an empty spec matches every record.
// Predicates are ANDed.
type FilterSpec struct {
	Status      *entities.BudgetStatus
	DateFrom    *time.Time
	DateTo      *time.Time
	ClientQuery string
}

// IsEmpty reports whether no predicate is active.
func (s FilterSpec) IsEmpty() bool {
	return s.Status == nil && s.DateFrom == nil && s.DateTo == nil && strings.TrimSpace(s.ClientQuery) == ""
}

// HasDateRange reports whether at least one date bound is set.
func (s FilterSpec) HasDateRange() bool {
	return s.DateFrom != nil || s.DateTo != nil
}

// Filter returns the subset of records matching every active predicate, in
// the input order. The input slice is never mutated; the result is always a
// new slice. There are no error conditions: malformed bounds are represented
// as nil and degrade to "unbounded".
func Filter(records []entities.Budget, spec FilterSpec) []entities.Budget {
	out := make([]entities.Budget, 0, len(records))
	query := strings.ToLower(strings.TrimSpace(spec.ClientQuery))
	for _, b := range records {
		if spec.Status != nil && b.Status != *spec.Status {
			continue
		}
		if !withinDateRange(b.EventDate, spec.DateFrom, spec.DateTo) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(b.Client), query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// withinDateRange compares calendar dates only, with inclusive bounds.
// Either bound may be open.
func withinDateRange(d time.Time, from, to *time.Time) bool {
	day := truncateToDay(d)
	if from != nil && day.Before(truncateToDay(*from)) {
		return false
	}
	if to != nil && day.After(truncateToDay(*to)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
