package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the single-error body: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an ErrorResponse
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the multi-error body: {"errors": [...]}
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// NewValidationErrorResponse converts a binding error into the field-level
// error list shape. Non-validator errors (malformed JSON, type mismatches)
// become a single unnamed entry.
func NewValidationErrorResponse(err error) ValidationErrorResponse {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ValidationErrorResponse{Errors: []FieldError{{Message: err.Error()}}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}
	return ValidationErrorResponse{Errors: fieldErrors}
}

// formatValidationError creates a human-readable validation message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
