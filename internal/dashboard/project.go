package dashboard

import (
	"fmt"
	"time"

	"decora_festas/internal/domain/entities"
)

// CalendarEvent is the calendar-view projection of a single budget.
// Its ID always equals the budget's ID, so an event maps back to exactly one
// record.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	Color string    `json:"color"`
}

// statusPalette is the fixed hue per status used by the calendar view.
var statusPalette = map[entities.BudgetStatus]string{
	entities.StatusPending:    "#f59e0b",
	entities.StatusApproved:   "#10b981",
	entities.StatusRejected:   "#ef4444",
	entities.StatusCancelled:  "#6b7280",
	entities.StatusDispatched: "#3b82f6",
}

// StatusColor returns the calendar hue for a status.
func StatusColor(s entities.BudgetStatus) string {
	if c, ok := statusPalette[s]; ok {
		return c
	}
	return statusPalette[entities.StatusPending]
}

// Projection carries the two renderable views derived from the same
// filtered, sorted sequence. The two never diverge in membership.
type Projection struct {
	List     []entities.Budget `json:"list"`
	Calendar []CalendarEvent   `json:"calendar"`
}

// Project derives both views from an already filtered and sorted sequence.
func Project(records []entities.Budget) Projection {
	events := make([]CalendarEvent, 0, len(records))
	for _, b := range records {
		events = append(events, CalendarEvent{
			ID:    b.ID,
			Title: EventTitle(b),
			Start: b.EventStart(),
			Color: StatusColor(b.Status),
		})
	}
	return Projection{List: records, Calendar: events}
}

// EventTitle composes the calendar title for a budget.
func EventTitle(b entities.Budget) string {
	return fmt.Sprintf("%s - %s", b.Client, b.ServiceType.Label())
}
