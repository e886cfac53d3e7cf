package entities

import (
	"fmt"
	"time"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - The service is the source of truth for budget state.
//   - Manual transitions come from the dashboard action menu; StatusDispatched
//     is only ever set as a side effect of a successful dispatch.

type BudgetStatus string

const (
	StatusPending    BudgetStatus = "pending"
	StatusApproved   BudgetStatus = "approved"
	StatusRejected   BudgetStatus = "rejected"
	StatusCancelled  BudgetStatus = "cancelled"
	StatusDispatched BudgetStatus = "dispatched"
)

// ParseBudgetStatus validates a raw status value. Only the five enumerated
// values are representable.
func ParseBudgetStatus(raw string) (BudgetStatus, error) {
	switch s := BudgetStatus(raw); s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusDispatched:
		return s, nil
	}
	return "", fmt.Errorf("unknown budget status %q", raw)
}

// AllStatuses lists every representable status, in lifecycle order.
func AllStatuses() []BudgetStatus {
	return []BudgetStatus{StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusDispatched}
}

// TransitionTable maps a current status to the set of statuses a manual
// action may move it to. The table is total: a missing entry means no manual
// transition is allowed from that state.
type TransitionTable map[BudgetStatus][]BudgetStatus

// DefaultTransitions is the permissive table: the manual menu allows
// approve/reject/cancel from any state, and dispatched is reachable only
// through the dispatch flow, never manually. Deployments that want a strict
// workflow install their own table.
func DefaultTransitions() TransitionTable {
	manual := []BudgetStatus{StatusApproved, StatusRejected, StatusCancelled}
	return TransitionTable{
		StatusPending:    manual,
		StatusApproved:   manual,
		StatusRejected:   manual,
		StatusCancelled:  manual,
		StatusDispatched: manual,
	}
}

// Allowed reports whether a manual transition from one status to another is
// permitted by the table.
func (t TransitionTable) Allowed(from, to BudgetStatus) bool {
	for _, s := range t[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Budget is a client service-request record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EventDate carries the calendar date only; EventTime is the "HH:MM" slot.
// Combined they define the record's position on the calendar view.
type Budget struct {
	ID             string       `json:"id"`
	Client         string       `json:"client"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	EventDate      time.Time    `json:"event_date"`
	EventTime      string       `json:"event_time"`
	EventLocation  string       `json:"event_location"`
	ServiceType    ServiceType  `json:"service_type"`
	Description    string       `json:"description"`
	EstimatedValue float64      `json:"estimated_value"`
	Notes          string       `json:"notes,omitempty"`
	ArcSize        string       `json:"arc_size,omitempty"`
	ImageRef       string       `json:"image_ref,omitempty"`
	Status         BudgetStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// EventStart combines EventDate and EventTime into a single instant.
// A malformed or empty time slot degrades to midnight.
func (b Budget) EventStart() time.Time {
	d := b.EventDate
	t, err := time.Parse("15:04", b.EventTime)
	if err != nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location())
}
