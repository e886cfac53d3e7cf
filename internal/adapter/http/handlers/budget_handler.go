package handlers

import (
	"errors"
	"log"
	"net/http"

	request "decora_festas/internal/adapter/http/dto/request"
	response "decora_festas/internal/adapter/http/dto/response"
	"decora_festas/internal/dashboard"
	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase"
	"decora_festas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budget records. Successful writes
// also update the session store so the dashboard pipeline stays consistent
// with the persistence collaborator.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	store   *dashboard.Store
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, store *dashboard.Store) *BudgetHandler {
	return &BudgetHandler{usecase: uc, store: store}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.store.Upsert(created)

	c.JSON(http.StatusCreated, response.FromBudget(created))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id := c.Param("id")
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.store.Upsert(updated)

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	// Local removal only after the collaborator confirmed the deletion.
	h.store.Remove(id)

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	bs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(bs))
}

// ChangeStatus applies a manual transition from the dashboard action menu.
func (h *BudgetHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	status, err := entities.ParseBudgetStatus(payload.Status)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), id, status, payload.Confirm)
	if err != nil {
		log.Printf("[budget][handler] status change failed id=%s err=%v", id, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.store.SetStatus(updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

func (h *BudgetHandler) bindInput(c *gin.Context) (usecase.BudgetInput, bool) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return usecase.BudgetInput{}, false
	}

	eventDate, err := payload.ResolveEventDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_EVENT_DATE", "Invalid event date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return usecase.BudgetInput{}, false
	}

	return usecase.BudgetInput{
		Client:         payload.Client,
		Email:          payload.Email,
		Phone:          payload.Phone,
		EventDate:      eventDate,
		EventTime:      payload.EventTime,
		EventLocation:  payload.EventLocation,
		ServiceType:    entities.ServiceType(payload.ServiceType),
		Description:    payload.Description,
		EstimatedValue: payload.EstimatedValue,
		Notes:          payload.Notes,
		ArcSize:        payload.ArcSize,
		ImageRef:       payload.ImageRef,
	}, true
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrMissingClient),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidEventDate),
		errors.Is(err, usecase.ErrPastEventDate),
		errors.Is(err, usecase.ErrInvalidValue),
		errors.Is(err, usecase.ErrInvalidServiceType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotConfirmed):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Status change requires confirmation", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrManualDispatch):
		return pkg.NewDomainErrorSimple("MANUAL_DISPATCH_FORBIDDEN", "Dispatched is set by the dispatch flow only", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
