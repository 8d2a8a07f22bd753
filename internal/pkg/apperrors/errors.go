package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course / offering / schedule errors
var (
	ErrCourseNotFound        = errors.New("course not found")
	ErrCourseAlreadyExists   = errors.New("course with this code already exists")
	ErrCourseHasSchedules    = errors.New("course has scheduled batches and cannot be deleted")
	ErrOfferingNotFound      = errors.New("course offering not found")
	ErrOfferingAlreadyExists = errors.New("an offering with this delivery mode and pace already exists for the course")
	ErrScheduleNotFound      = errors.New("course schedule not found")
	ErrScheduleFull          = errors.New("course schedule has reached its capacity")
)

// Student / trainer / enrollment errors
var (
	ErrStudentNotFound           = errors.New("student not found")
	ErrEnrollmentNoAlreadyExists = errors.New("enrollment number already exists")
	ErrTrainerNotFound           = errors.New("trainer not found")
	ErrEnrollmentNotFound        = errors.New("enrollment not found")
	ErrAlreadyEnrolled           = errors.New("student is already enrolled in this schedule")
)

// Asset errors
var (
	ErrAssetNotFound          = errors.New("asset not found")
	ErrAssetNotAvailable      = errors.New("asset is not available for assignment")
	ErrDuplicateSerialNumber  = errors.New("asset with this serial number already exists")
	ErrInvalidAssetStatus     = errors.New("invalid asset status")
	ErrInvalidAssigneeType    = errors.New("invalid assignee type")
	ErrAssetAssignmentMissing = errors.New("asset has no open assignment")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewAssetNotAvailableError creates an asset-unavailable error naming the
// asset's current status
func NewAssetNotAvailableError(currentStatus string) error {
	return &CustomError{
		Err:     ErrAssetNotAvailable,
		Message: "asset is currently " + currentStatus + " and cannot be assigned",
	}
}
