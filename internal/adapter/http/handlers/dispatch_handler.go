package handlers

import (
	"errors"
	"log"
	"net/http"

	request "decora_festas/internal/adapter/http/dto/request"
	response "decora_festas/internal/adapter/http/dto/response"
	"decora_festas/internal/dashboard"
	"decora_festas/internal/usecase"
	"decora_festas/pkg"

	"github.com/gin-gonic/gin"
)

// DispatchHandler handles sending a budget to its client and reading the
// dispatch audit trail.

type DispatchHandler struct {
	usecase usecase.IDispatchUseCase
	store   *dashboard.Store
}

func NewDispatchHandler(uc usecase.IDispatchUseCase, store *dashboard.Store) *DispatchHandler {
	return &DispatchHandler{usecase: uc, store: store}
}

// DispatchBudget sends the budget summary through exactly one channel and,
// on success, reflects the dispatched status in the session store.
func (h *DispatchHandler) DispatchBudget(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[dispatch][handler] start budget_id=%s", id)

	var payload request.DispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Dispatch(c.Request.Context(), id, usecase.DispatchInput{
		Email:         payload.Email,
		WhatsApp:      payload.WhatsApp,
		CustomMessage: payload.CustomMessage,
		Confirmed:     payload.Confirm,
	})
	if err != nil {
		log.Printf("[dispatch][handler] failed budget_id=%s err=%v", id, err)
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.store.SetStatus(res.Budget.ID, res.Budget.Status)
	log.Printf("[dispatch][handler] success budget_id=%s channel=%s", id, res.Channel)

	c.JSON(http.StatusOK, response.FromDispatchResult(res))
}

// ListNotifications returns the audit trail for one budget.
func (h *DispatchHandler) ListNotifications(c *gin.Context) {
	id := c.Param("id")

	logs, err := h.usecase.ListByBudgetID(c.Request.Context(), id)
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationLogs(logs))
}

func mapDispatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChannelRequired):
		return pkg.NewDomainErrorSimple("CHANNEL_REQUIRED", "Select a dispatch channel", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChannelConflict):
		return pkg.NewDomainErrorSimple("CHANNEL_CONFLICT", "Channels are mutually exclusive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotConfirmedDispatch):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Dispatch requires confirmation", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrMissingEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "No email on file for this client", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingPhone):
		return pkg.NewDomainErrorSimple("MISSING_PHONE", "No phone on file for this client", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
