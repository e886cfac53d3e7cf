package response

import (
	"decora_festas/internal/dashboard"
)

// DashboardResponse is the produced interface to the rendering layer: the
// filtered/sorted record sequence, the calendar event sequence, and, when
// applicable, the selected target with its highlight plan.
type DashboardResponse struct {
	List        []BudgetResponse          `json:"list"`
	Calendar    []dashboard.CalendarEvent `json:"calendar"`
	Degraded    bool                      `json:"degraded"`
	NoMatches   bool                      `json:"no_matches"`
	ResetFilter bool                      `json:"reset_filter,omitempty"`
	Target      *BudgetResponse           `json:"target,omitempty"`
	Highlight   *dashboard.HighlightPlan  `json:"highlight,omitempty"`
}

func FromDashboardResult(res dashboard.Result) DashboardResponse {
	out := DashboardResponse{
		List:        FromBudgets(res.Projection.List),
		Calendar:    res.Projection.Calendar,
		Degraded:    res.Degraded,
		NoMatches:   res.NoMatches,
		ResetFilter: res.ResetFilter,
		Highlight:   res.Highlight,
	}
	if res.Target != nil {
		t := FromBudget(*res.Target)
		out.Target = &t
	}
	return out
}
