package dashboard

import (
	"time"

	"decora_festas/internal/domain/entities"
)

// LocatorKind identifies one step of the fallback chain a renderer walks to
// find the target's on-screen representation.

type LocatorKind string

const (
	// LocateByID matches the event by its stable identifier.
	LocateByID LocatorKind = "by_id"
	// LocateByTitle matches any rendered event whose title contains Value.
	LocateByTitle LocatorKind = "by_title_substring"
	// LocateAnyVisible picks any visible event so the highlight never
	// silently no-ops.
	LocateAnyVisible LocatorKind = "any_visible"
)

// Locator is one entry of the fallback chain, tried in order.
type Locator struct {
	Kind  LocatorKind `json:"kind"`
	Value string      `json:"value,omitempty"`
}

// Pulse describes the transient emphasis effect: Repeat pulses of PeriodMs
// each, cleared automatically afterwards.
type Pulse struct {
	Repeat   int   `json:"repeat"`
	PeriodMs int64 `json:"period_ms"`
}

// HighlightPlan tells the rendering layer how to bring the selected target
// into view and emphasize it. The plan is pure data so the selection logic
// stays testable without a rendering surface.
type HighlightPlan struct {
	TargetID   string    `json:"target_id"`
	NavigateTo time.Time `json:"navigate_to"`
	Locators   []Locator `json:"locators"`
	Pulse      Pulse     `json:"pulse"`
	// ReplacesPrevious: any highlight still active must be cleared before
	// this one is applied. At most one highlighted event at a time.
	ReplacesPrevious bool `json:"replaces_previous"`
}

// PlanHighlight builds the plan for a selected target: navigate the calendar
// to the target's date, then resolve it by id, by title substring, and as a
// last resort by any visible event; pulse three times for two seconds each.
func PlanHighlight(target entities.Budget) HighlightPlan {
	return HighlightPlan{
		TargetID:   target.ID,
		NavigateTo: target.EventStart(),
		Locators: []Locator{
			{Kind: LocateByID, Value: target.ID},
			{Kind: LocateByTitle, Value: EventTitle(target)},
			{Kind: LocateAnyVisible},
		},
		Pulse:            Pulse{Repeat: 3, PeriodMs: (2 * time.Second).Milliseconds()},
		ReplacesPrevious: true,
	}
}
