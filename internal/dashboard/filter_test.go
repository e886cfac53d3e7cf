package dashboard

import (
	"testing"
	"time"

	"decora_festas/internal/domain/entities"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func statusPtr(s entities.BudgetStatus) *entities.BudgetStatus { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func fixtureBudgets() []entities.Budget {
	return []entities.Budget{
		{ID: "b-1", Client: "Maria Silva", EventDate: day(2024, 12, 15), Status: entities.StatusPending},
		{ID: "b-2", Client: "João Pereira", EventDate: day(2024, 12, 20), Status: entities.StatusApproved},
		{ID: "b-3", Client: "Ana Costa", EventDate: day(2024, 12, 18), Status: entities.StatusApproved},
		{ID: "b-4", Client: "Carlos Mendes", EventDate: day(2024, 12, 25), Status: entities.StatusRejected},
		{ID: "b-5", Client: "Marta Rocha", EventDate: day(2025, 1, 5), Status: entities.StatusDispatched},
	}
}

func ids(records []entities.Budget) []string {
	out := make([]string, 0, len(records))
	for _, b := range records {
		out = append(out, b.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []entities.Budget, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, g)
		}
	}
}

func TestFilter(t *testing.T) {
	records := fixtureBudgets()

	t.Run("empty spec passes everything through in order", func(t *testing.T) {
		got := Filter(records, FilterSpec{})
		assertIDs(t, got, "b-1", "b-2", "b-3", "b-4", "b-5")
	})

	t.Run("status filter keeps only matching records", func(t *testing.T) {
		got := Filter(records, FilterSpec{Status: statusPtr(entities.StatusApproved)})
		assertIDs(t, got, "b-2", "b-3")
	})

	t.Run("status filter on absent status yields empty", func(t *testing.T) {
		got := Filter(records, FilterSpec{Status: statusPtr(entities.StatusCancelled)})
		if len(got) != 0 {
			t.Fatalf("expected no matches, got %v", ids(got))
		}
	})

	t.Run("client substring is case insensitive", func(t *testing.T) {
		got := Filter(records, FilterSpec{ClientQuery: "mar"})
		assertIDs(t, got, "b-1", "b-5")
	})

	t.Run("client query with surrounding whitespace still matches", func(t *testing.T) {
		got := Filter(records, FilterSpec{ClientQuery: "  ANA  "})
		assertIDs(t, got, "b-3")
	})

	t.Run("date range bounds are inclusive on both ends", func(t *testing.T) {
		spec := FilterSpec{
			DateFrom: timePtr(day(2024, 12, 16)),
			DateTo:   timePtr(day(2024, 12, 31)),
		}
		got := Filter(records, spec)
		assertIDs(t, got, "b-2", "b-3", "b-4")
	})

	t.Run("date bound matching the event date itself is kept", func(t *testing.T) {
		spec := FilterSpec{
			DateFrom: timePtr(day(2024, 12, 15)),
			DateTo:   timePtr(day(2024, 12, 15)),
		}
		got := Filter(records, spec)
		assertIDs(t, got, "b-1")
	})

	t.Run("open upper bound", func(t *testing.T) {
		got := Filter(records, FilterSpec{DateFrom: timePtr(day(2024, 12, 21))})
		assertIDs(t, got, "b-4", "b-5")
	})

	t.Run("bounds compare calendar dates regardless of time of day", func(t *testing.T) {
		late := time.Date(2024, 12, 15, 23, 55, 0, 0, time.UTC)
		got := Filter(records, FilterSpec{DateTo: timePtr(late.Add(-23 * time.Hour))})
		assertIDs(t, got, "b-1")
	})

	t.Run("predicates are ANDed", func(t *testing.T) {
		spec := FilterSpec{
			Status:   statusPtr(entities.StatusApproved),
			DateFrom: timePtr(day(2024, 12, 19)),
			DateTo:   timePtr(day(2024, 12, 31)),
		}
		got := Filter(records, spec)
		assertIDs(t, got, "b-2")
	})

	t.Run("input slice is never mutated", func(t *testing.T) {
		before := ids(records)
		_ = Filter(records, FilterSpec{Status: statusPtr(entities.StatusApproved), ClientQuery: "a"})
		after := ids(records)
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("input mutated: %v -> %v", before, after)
			}
		}
	})
}

func TestFilterSpec_IsEmpty(t *testing.T) {
	if !(FilterSpec{}).IsEmpty() {
		t.Fatalf("zero spec should be empty")
	}
	if !(FilterSpec{ClientQuery: "   "}).IsEmpty() {
		t.Fatalf("whitespace-only client query should count as empty")
	}
	if (FilterSpec{Status: statusPtr(entities.StatusPending)}).IsEmpty() {
		t.Fatalf("status predicate should make the spec non-empty")
	}
	if (FilterSpec{DateTo: timePtr(day(2024, 12, 31))}).IsEmpty() {
		t.Fatalf("date bound should make the spec non-empty")
	}
}
