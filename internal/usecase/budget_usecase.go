package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrInvalidBudgetID      = errors.New("invalid budget id")
	ErrMissingClient        = errors.New("missing client name")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidEventDate     = errors.New("invalid event date")
	ErrPastEventDate        = errors.New("event date in the past")
	ErrInvalidValue         = errors.New("invalid estimated value")
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrNotConfirmed         = errors.New("status change not confirmed")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrManualDispatch       = errors.New("dispatched is only set by the dispatch flow")
)

// BudgetInput carries the editable fields of a budget through the creation
// and edit workflows.
type BudgetInput struct {
	Client         string
	Email          string
	Phone          string
	EventDate      time.Time
	EventTime      string
	EventLocation  string
	ServiceType    entities.ServiceType
	Description    string
	EstimatedValue float64
	Notes          string
	ArcSize        string
	ImageRef       string
}

// IBudgetUseCase exposes the budget lifecycle operations.
//
//   - Create/Update/Delete drive the record workflows
//   - ChangeStatus is the status controller behind the dashboard action menu
//   - List feeds the session store

type IBudgetUseCase interface {
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	Update(ctx context.Context, id string, in BudgetInput) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status entities.BudgetStatus, confirmed bool) (entities.Budget, error)
	MarkDispatched(ctx context.Context, id string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	transitions entities.TransitionTable
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase wires the repository and the transition table. A nil
// table installs the default (permissive) one.
func NewBudgetUseCase(repo interfaces.IBudgetRepository, transitions entities.TransitionTable) *BudgetUseCase {
	if transitions == nil {
		transitions = entities.DefaultTransitions()
	}
	return &BudgetUseCase{repo: repo, transitions: transitions}
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	if err := validateInput(in, time.Now().UTC()); err != nil {
		return entities.Budget{}, err
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:             uuid.NewString(),
		Client:         strings.TrimSpace(in.Client),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		EventDate:      in.EventDate,
		EventTime:      in.EventTime,
		EventLocation:  in.EventLocation,
		ServiceType:    in.ServiceType,
		Description:    in.Description,
		EstimatedValue: in.EstimatedValue,
		Notes:          in.Notes,
		ArcSize:        in.ArcSize,
		ImageRef:       in.ImageRef,
		Status:         entities.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, b)
}

// Update replaces the editable fields of an existing record. Every field of
// the payload overwrites its counterpart except ImageRef, which is only
// replaced when the payload carries one; Status and CreatedAt are never
// touched here.
func (u *BudgetUseCase) Update(ctx context.Context, id string, in BudgetInput) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if err := validateInput(in, time.Now().UTC()); err != nil {
		return entities.Budget{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	existing.Client = strings.TrimSpace(in.Client)
	existing.Email = strings.TrimSpace(in.Email)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.EventDate = in.EventDate
	existing.EventTime = in.EventTime
	existing.EventLocation = in.EventLocation
	existing.ServiceType = in.ServiceType
	existing.Description = in.Description
	existing.EstimatedValue = in.EstimatedValue
	existing.Notes = in.Notes
	existing.ArcSize = in.ArcSize
	if in.ImageRef != "" {
		existing.ImageRef = in.ImageRef
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBudgetID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrBudgetNotFound
	}
	return u.repo.Delete(ctx, id)
}

// ChangeStatus applies a manual status transition. The confirmation gate is
// synchronous: an unconfirmed request is rejected before anything else runs.
// On repository failure the canonical record is left unchanged.
func (u *BudgetUseCase) ChangeStatus(ctx context.Context, id string, status entities.BudgetStatus, confirmed bool) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if !confirmed {
		return entities.Budget{}, ErrNotConfirmed
	}
	if status == entities.StatusDispatched {
		return entities.Budget{}, ErrManualDispatch
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if !u.transitions.Allowed(existing.Status, status) {
		log.Printf("[budget][usecase] transition rejected id=%s from=%s to=%s", id, existing.Status, status)
		return entities.Budget{}, ErrTransitionNotAllowed
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	log.Printf("[budget][usecase] status changed id=%s from=%s to=%s", id, existing.Status, status)
	return updated, nil
}

// MarkDispatched is the status side effect of a successful dispatch. It
// bypasses the manual transition table: dispatched is reachable from any
// prior status, but only through this path.
func (u *BudgetUseCase) MarkDispatched(ctx context.Context, id string) (entities.Budget, error) {
	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.StatusDispatched)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

// validateInput enforces the client-side validation taxonomy: every failure
// here blocks the workflow before any network call.
func validateInput(in BudgetInput, now time.Time) error {
	if strings.TrimSpace(in.Client) == "" {
		return ErrMissingClient
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return ErrInvalidEmail
	}
	if in.EventDate.IsZero() {
		return ErrInvalidEventDate
	}
	if dayOf(in.EventDate).Before(dayOf(now)) {
		return ErrPastEventDate
	}
	if _, err := entities.ParseServiceType(string(in.ServiceType)); err != nil {
		return ErrInvalidServiceType
	}
	if in.EstimatedValue <= 0 {
		return ErrInvalidValue
	}
	return nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
