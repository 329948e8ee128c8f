package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink/internlink/internal/app/models/dto"
	"github.com/internlink/internlink/internal/pkg/apperrors"
	"github.com/internlink/internlink/internal/pkg/logger"
)

// HandleAPIError translates named service errors into HTTP responses. Every
// service function either returns its result or fails with one of the
// apperrors sentinels; unknown errors become an opaque 500 and the detail
// stays in the server log.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrNoFieldsToUpdate),
		errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrWrongOldPassword):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrAccessDenied),
		errors.Is(err, apperrors.ErrNotAuthorized):
		logger.Warn().Err(err).Str("path", c.FullPath()).Msg("Authorization rejected")
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrFeedbackNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("server error"))
	}
}
