package handlers

import (
	"errors"
	"io"
	"net/http"

	"decora_festas/internal/usecase"
	"decora_festas/pkg"

	"github.com/gin-gonic/gin"
)

// UploadHandler accepts the optional inspiration image for a budget.

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// UploadInspirationImage validates and stores a multipart "image" file,
// returning the reference to set on the budget. Type and size are rejected
// before anything is written.
func (h *UploadHandler) UploadInspirationImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_IMAGE", "Missing image file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fh.Size > usecase.MaxImageBytes {
		appErr := mapUploadError(usecase.ErrImageTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fh.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxImageBytes+1))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ref, err := h.usecase.SaveInspirationImage(c.Request.Context(), fh.Filename, data)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_ref": ref})
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyImage):
		return pkg.NewDomainErrorSimple("EMPTY_IMAGE", "Empty image upload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the 5 MB limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrNotAnImage):
		return pkg.NewDomainErrorSimple("NOT_AN_IMAGE", "File is not an image", http.StatusUnsupportedMediaType)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
