package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/electives/cutoffs/internal/app/models/dto"
)

// BindQuery binds the query string into obj and validates it. On failure it
// writes a 400 response and returns false.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(HandleValidationError(err)))
		return false
	}
	return true
}

// HandleValidationError converts a binding or validation error into an error detail
func HandleValidationError(err error) *dto.ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request parameters").
			WithDetails(err.Error())
	}

	errs := dto.NewValidationErrors()
	for _, fe := range fieldErrors {
		errs.AddError(fieldName(fe), formatValidationError(fe))
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errs.Errors[0].Message).
		WithField(errs.Errors[0].Field)
	if len(errs.Errors) > 1 {
		detail.WithDetails(errs.Errors)
	}
	return detail
}

func fieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := fieldName(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		return field + " must be at least " + e.Param()
	case "max", "lte":
		return field + " must be at most " + e.Param()
	case "cgpa":
		return field + " must be between 0 and 10"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
