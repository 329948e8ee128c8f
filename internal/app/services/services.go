// Package services implements the business rules between the HTTP layer and
// the repositories. Services validate input, apply the access policies, and
// fail with apperrors sentinels that the error middleware maps to status
// codes.
package services

import (
	"github.com/internlink/internlink/internal/app/models"
	"github.com/internlink/internlink/internal/pkg/apperrors"
)

// parseOptionalDate parses a date string when present, failing with a
// validation error naming the field.
func parseOptionalDate(field string, value *string) (*models.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := models.ParseDate(*value)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, field+" must be a valid date")
	}
	return &parsed, nil
}

// validateDateRange rejects a range whose start falls after its end. Open
// ranges pass.
func validateDateRange(start, end *models.Date) error {
	if start == nil || end == nil {
		return nil
	}
	if start.After(end.Time) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "start date cannot be after end date")
	}
	return nil
}

func defaultString(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
