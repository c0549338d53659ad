package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Lifecycle errors
	ErrInvalidState = errors.New("invalid state transition")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Teacher errors
var (
	ErrTeacherNotFound  = NewResourceNotFoundError("teacher not found")
	ErrTeacherSuspended = NewCustomError(ErrAccountDisabled, "teacher account is suspended")
)

// Parent errors
var (
	ErrParentNotFound = NewResourceNotFoundError("parent not found")
	ErrParentBlocked  = NewCustomError(ErrAccountDisabled, "parent account is blocked")
	ErrChildNotFound  = NewResourceNotFoundError("child not found")
)

// Course errors
var (
	ErrCourseNotFound = NewResourceNotFoundError("course not found")
)

// Request lifecycle errors
var (
	ErrRequestNotFound   = NewResourceNotFoundError("request not found")
	ErrRequestNotPending = NewInvalidStateError("request is not pending")
)

// Appointment lifecycle errors
var (
	ErrAppointmentNotFound     = NewResourceNotFoundError("appointment not found")
	ErrAppointmentNotScheduled = NewInvalidStateError("appointment is not scheduled")
	ErrScheduleDateInPast      = NewValidationError("appointment date cannot be in the past")
	ErrScheduleTimesOutOfOrder = NewValidationError("start time must be before end time")
	ErrScheduleInvalidTime     = NewValidationError("time must be in HH:MM format")
	ErrScheduleInvalidLocation = NewValidationError("unknown teaching location")
)

// Review errors
var (
	ErrReviewInvalidRating = NewValidationError("rating must be between 1 and 5")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewInvalidStateError creates a new custom error for an illegal lifecycle transition
func NewInvalidStateError(message string) error {
	return &CustomError{
		Err:     ErrInvalidState,
		Message: message,
	}
}

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
