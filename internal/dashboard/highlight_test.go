package dashboard

import (
	"testing"
	"time"

	"decora_festas/internal/domain/entities"
)

func TestPlanHighlight(t *testing.T) {
	target := entities.Budget{
		ID:          "b-3",
		Client:      "Ana Costa",
		ServiceType: entities.ServicePicnic,
		EventDate:   day(2024, 12, 18),
		EventTime:   "11:00",
	}

	plan := PlanHighlight(target)

	if plan.TargetID != "b-3" {
		t.Fatalf("expected target id b-3, got %s", plan.TargetID)
	}
	want := time.Date(2024, 12, 18, 11, 0, 0, 0, time.UTC)
	if !plan.NavigateTo.Equal(want) {
		t.Fatalf("expected navigation to %v, got %v", want, plan.NavigateTo)
	}
	if !plan.ReplacesPrevious {
		t.Fatalf("expected the plan to replace any previous highlight")
	}

	if len(plan.Locators) != 3 {
		t.Fatalf("expected 3 locators, got %d", len(plan.Locators))
	}
	if plan.Locators[0].Kind != LocateByID || plan.Locators[0].Value != "b-3" {
		t.Fatalf("unexpected first locator %+v", plan.Locators[0])
	}
	if plan.Locators[1].Kind != LocateByTitle || plan.Locators[1].Value != "Ana Costa - Picnic Setup" {
		t.Fatalf("unexpected second locator %+v", plan.Locators[1])
	}
	if plan.Locators[2].Kind != LocateAnyVisible || plan.Locators[2].Value != "" {
		t.Fatalf("unexpected last-resort locator %+v", plan.Locators[2])
	}

	if plan.Pulse.Repeat != 3 || plan.Pulse.PeriodMs != 2000 {
		t.Fatalf("expected 3 pulses of 2000ms, got %+v", plan.Pulse)
	}
}
