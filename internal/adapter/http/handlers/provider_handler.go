package handlers

import (
	"context"
	"errors"
	"net/http"

	request "decora_festas/internal/adapter/http/dto/request"
	response "decora_festas/internal/adapter/http/dto/response"
	"decora_festas/internal/usecase"
	"decora_festas/pkg"

	"github.com/gin-gonic/gin"
)

// ProviderHandler handles decorator review actions.

type ProviderHandler struct {
	usecase usecase.IProviderReviewUseCase
}

func NewProviderHandler(uc usecase.IProviderReviewUseCase) *ProviderHandler {
	return &ProviderHandler{usecase: uc}
}

func (h *ProviderHandler) ApproveProvider(c *gin.Context) {
	h.review(c, h.usecase.Approve)
}

func (h *ProviderHandler) RejectProvider(c *gin.Context) {
	h.review(c, h.usecase.Reject)
}

func (h *ProviderHandler) review(
	c *gin.Context,
	action func(ctx context.Context, providerID string, channels usecase.ReviewChannels) (usecase.ReviewResult, error),
) {
	id := c.Param("id")

	var payload request.ProviderReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := action(c.Request.Context(), id, usecase.ReviewChannels{
		Email:    payload.Email,
		WhatsApp: payload.WhatsApp,
	})
	if err != nil {
		appErr := mapProviderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewResult(res))
}

func mapProviderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderID), errors.Is(err, usecase.ErrNoReviewChannel):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
