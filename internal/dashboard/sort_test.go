package dashboard

import (
	"testing"
	"time"

	"decora_festas/internal/domain/entities"
)

func TestSortByCreatedAt(t *testing.T) {
	base := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	records := []entities.Budget{
		{ID: "old", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}

	t.Run("desc puts the most recent first", func(t *testing.T) {
		got := SortByCreatedAt(records, SortDesc)
		assertIDs(t, got, "newest", "mid", "old")
	})

	t.Run("asc puts the oldest first", func(t *testing.T) {
		got := SortByCreatedAt(records, SortAsc)
		assertIDs(t, got, "old", "mid", "newest")
	})

	t.Run("equal timestamps keep their relative order", func(t *testing.T) {
		ties := []entities.Budget{
			{ID: "a", CreatedAt: base},
			{ID: "b", CreatedAt: base},
			{ID: "c", CreatedAt: base},
		}
		got := SortByCreatedAt(ties, SortDesc)
		assertIDs(t, got, "a", "b", "c")
		got = SortByCreatedAt(got, SortAsc)
		assertIDs(t, got, "a", "b", "c")
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		_ = SortByCreatedAt(records, SortAsc)
		assertIDs(t, records, "old", "newest", "mid")
	})
}

func TestSortDirection_Toggle(t *testing.T) {
	if DefaultSort != SortDesc {
		t.Fatalf("expected default sort to be desc, got %s", DefaultSort)
	}
	if SortDesc.Toggle() != SortAsc {
		t.Fatalf("expected desc to toggle to asc")
	}
	if SortAsc.Toggle() != SortDesc {
		t.Fatalf("expected asc to toggle to desc")
	}
	if SortDesc.Toggle().Toggle() != SortDesc {
		t.Fatalf("expected double toggle to restore the direction")
	}
}
