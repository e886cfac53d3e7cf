package dashboard

import (
	"sort"

	"decora_festas/internal/domain/entities"
)

// SortDirection orders records by creation time.

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DefaultSort is most-recent-first.
const DefaultSort = SortDesc

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortByCreatedAt returns a new slice ordered by CreatedAt. The sort is
// stable, so records sharing a creation instant keep their relative order and
// toggling the direction twice restores the original arrangement.
func SortByCreatedAt(records []entities.Budget, dir SortDirection) []entities.Budget {
	out := make([]entities.Budget, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == SortAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
