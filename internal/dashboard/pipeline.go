package dashboard

import (
	"time"

	"decora_festas/internal/domain/entities"
)

// ActiveView names which presentation is currently visible.

type ActiveView string

const (
	ViewList     ActiveView = "list"
	ViewCalendar ActiveView = "calendar"
)

// View is the explicit dashboard context: the filter spec, the sort
// direction and the active presentation. There is no shared module-level
// view state; every pipeline run receives it as an argument.
type View struct {
	Filter FilterSpec
	Sort   SortDirection
	Active ActiveView
}

func NewView() View {
	return View{Sort: DefaultSort, Active: ViewList}
}

// Result is the output of one full pipeline run. ResetFilter is set together
// with NoMatches: the one-click affordance that clears the filter spec.
type Result struct {
	Projection  Projection       `json:"projection"`
	Degraded    bool             `json:"degraded"`
	NoMatches   bool             `json:"no_matches"`
	ResetFilter bool             `json:"reset_filter,omitempty"`
	Target      *entities.Budget `json:"target,omitempty"`
	Highlight   *HighlightPlan   `json:"highlight,omitempty"`
}

// Refresh runs the whole pipeline: snapshot → filter → sort → project, and,
// only when a filter is active and the calendar view is showing, target
// selection and highlight planning. Both views are always fed the same
// filtered subset.
func Refresh(store *Store, view View, now time.Time) Result {
	records, degraded := store.Snapshot()
	filtered := Filter(records, view.Filter)
	sorted := SortByCreatedAt(filtered, view.Sort)

	res := Result{
		Projection: Project(sorted),
		Degraded:   degraded,
	}

	if view.Active != ViewCalendar || view.Filter.IsEmpty() {
		return res
	}

	if len(filtered) == 0 {
		res.NoMatches = true
		res.ResetFilter = true
		return res
	}

	// Target selection runs against filtered order, not sorted order, so the
	// tie-break is the canonical first-encountered record.
	if target, ok := SelectTarget(filtered, view.Filter, now); ok {
		plan := PlanHighlight(target)
		res.Target = &target
		res.Highlight = &plan
	}
	return res
}
