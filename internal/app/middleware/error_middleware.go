package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/logger"
)

// HandleAPIError maps an application error to an HTTP response. Every
// controller funnels its errors through here so status codes and payload
// shapes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request failed with server error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token has expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token is invalid")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token has been revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")

	// 403
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action")

	// 404
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrOfferingNotFound),
		errors.Is(err, apperrors.ErrScheduleNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTrainerNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOf(err))

	// 409: duplicates and business-rule conflicts
	case errors.Is(err, apperrors.ErrAssetNotAvailable):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeAssetUnavailable, messageOf(err))
	case errors.Is(err, apperrors.ErrScheduleFull):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeScheduleFull, messageOf(err))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeAlreadyEnrolled, messageOf(err))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCourseAlreadyExists),
		errors.Is(err, apperrors.ErrOfferingAlreadyExists),
		errors.Is(err, apperrors.ErrEnrollmentNoAlreadyExists),
		errors.Is(err, apperrors.ErrDuplicateSerialNumber),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageOf(err))
	case errors.Is(err, apperrors.ErrCourseHasSchedules),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceConflict, messageOf(err))

	// 400
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidAssetStatus),
		errors.Is(err, apperrors.ErrInvalidAssigneeType):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOf(err))

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}

// messageOf prefers the CustomError message over the sentinel text
func messageOf(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		return custom.Error()
	}
	return err.Error()
}

// HandleValidationError maps a request binding failure to a 400 response
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed").
		WithDetailsf("%v", err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
