package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/electives/cutoffs/internal/app/models/dto"
	"github.com/electives/cutoffs/internal/pkg/apperrors"
	"github.com/electives/cutoffs/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	message := func(fallback string) string {
		if hasCustom && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}
	decorate := func(detail *dto.ErrorDetail) *dto.ErrorDetail {
		if hasCustom {
			if custom.Field != "" {
				detail.WithField(custom.Field)
			}
			if len(custom.Details) > 0 {
				detail.WithDetails(custom.Details)
			}
		}
		return detail
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, decorate(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, decorate(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed")))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, decorate(dto.NewErrorDetail(dto.ErrorCodeBadRequest, message("Bad request")))
	case apperrors.Is(err, apperrors.ErrEmptyDataset, apperrors.ErrDatasetInvalid):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeDatasetUnavailable, "Elective data is unavailable").
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
