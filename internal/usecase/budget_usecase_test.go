package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"decora_festas/internal/domain/entities"
	mock_interfaces "decora_festas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInput() BudgetInput {
	return BudgetInput{
		Client:         "Maria Silva",
		Email:          "maria.silva@example.com",
		Phone:          "+5511999990001",
		EventDate:      time.Now().UTC().Add(30 * 24 * time.Hour),
		EventTime:      "15:00",
		EventLocation:  "Salão Primavera",
		ServiceType:    entities.ServiceBalloonArch,
		Description:    "Birthday arch, pastel colors",
		EstimatedValue: 850,
		ArcSize:        "4m",
	}
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("missing client", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := validInput()
		in.Client = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := validInput()
		in.Email = "not-an-email"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("missing event date", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := validInput()
		in.EventDate = time.Time{}
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidEventDate) {
			t.Fatalf("expected ErrInvalidEventDate, got %v", err)
		}
	})

	t.Run("past event date", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := validInput()
		in.EventDate = time.Now().UTC().Add(-48 * time.Hour)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrPastEventDate) {
			t.Fatalf("expected ErrPastEventDate, got %v", err)
		}
	})

	t.Run("today is not a past date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		in := validInput()
		in.EventDate = time.Now().UTC()
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := validInput()
		in.ServiceType = "fireworks"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidServiceType) {
			t.Fatalf("expected ErrInvalidServiceType, got %v", err)
		}
	})

	t.Run("non-positive value", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		in := validInput()
		in.EstimatedValue = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" {
					t.Fatalf("expected generated id")
				}
				if b.Client != "Maria Silva" || b.Status != entities.StatusPending {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		in := validInput()
		in.Client = "  Maria Silva  "
		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusPending {
			t.Fatalf("expected new budget to start pending, got %s", res.Status)
		}
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "  ", validInput())
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.Update(context.Background(), "b-1", validInput())
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("record vanished between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Budget{}, nil)

		_, err := uc.Update(context.Background(), "b-1", validInput())
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("update keeps status and image ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		existing := entities.Budget{
			ID:       "b-1",
			Client:   "Old Name",
			Status:   entities.StatusApproved,
			ImageRef: "uploads/prior.png",
		}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Status != entities.StatusApproved {
					t.Fatalf("expected status preserved, got %s", b.Status)
				}
				if b.ImageRef != "uploads/prior.png" {
					t.Fatalf("expected prior image ref kept, got %s", b.ImageRef)
				}
				if b.Client != "Maria Silva" {
					t.Fatalf("expected client updated, got %s", b.Client)
				}
				return b, nil
			},
		)

		if _, err := uc.Update(context.Background(), "b-1", validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), "   ", entities.StatusApproved, true)
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("confirmation gate runs before anything else", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), "b-1", entities.StatusApproved, false)
		if !errors.Is(err, ErrNotConfirmed) {
			t.Fatalf("expected ErrNotConfirmed, got %v", err)
		}
	})

	t.Run("dispatched is never a manual transition", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), "b-1", entities.StatusDispatched, true)
		if !errors.Is(err, ErrManualDispatch) {
			t.Fatalf("expected ErrManualDispatch, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "b-1", entities.StatusApproved, true)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("transition rejected by the table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		strict := entities.TransitionTable{
			entities.StatusPending: {entities.StatusApproved, entities.StatusRejected},
		}
		uc := NewBudgetUseCase(repo, strict)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.StatusRejected}, nil)

		_, err := uc.ChangeStatus(context.Background(), "b-1", entities.StatusApproved, true)
		if !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("repository failure leaves no partial state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.StatusPending}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "b-1", entities.StatusApproved).Return(entities.Budget{}, errors.New("db"))

		_, err := uc.ChangeStatus(context.Background(), "b-1", entities.StatusApproved, true)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("change success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.StatusPending}, nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "b-1", entities.StatusApproved).
			Return(entities.Budget{ID: "b-1", Status: entities.StatusApproved}, nil)

		res, err := uc.ChangeStatus(context.Background(), " b-1 ", entities.StatusApproved, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})
}

func TestBudgetUseCase_MarkDispatched(t *testing.T) {
	t.Run("bypasses the manual transition table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, entities.TransitionTable{})

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "b-1", entities.StatusDispatched).
			Return(entities.Budget{ID: "b-1", Status: entities.StatusDispatched}, nil)

		res, err := uc.MarkDispatched(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusDispatched {
			t.Fatalf("expected dispatched, got %s", res.Status)
		}
	})

	t.Run("absent record maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "missing", entities.StatusDispatched).Return(entities.Budget{}, nil)

		_, err := uc.MarkDispatched(context.Background(), "missing")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		if err := uc.Delete(context.Background(), "b-1"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		if err := uc.Delete(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_GetByID(t *testing.T) {
	t.Run("empty result maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.GetByID(context.Background(), "b-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}
