package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure kind independent of its HTTP mapping.
type ErrorCode string

// AppError is the application error type. Everything a handler propagates is
// either an *AppError or gets wrapped into one by the translator.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy carrying extra, client-visible details. A copy so
// that the predeclared errors stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError returns a copy wrapping an underlying cause.
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors. Messages on the auth side match what clients of the
// public API already expect.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid username or password", http.StatusUnauthorized)
	ErrNotLoggedIn        = New(CodeUnauthorized, "You are not logged in! Please log in to get access.", http.StatusUnauthorized)
	ErrUserGone           = New(CodeUnauthorized, "User no longer exists", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrWrongPassword      = New(CodeInvalidCredentials, "Your current password is wrong!", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "You do not have permission to perform this action", http.StatusForbidden)

	// Validation
	ErrValidationFailed  = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidID         = New(CodeInvalidID, "Invalid ID format", http.StatusBadRequest)
	ErrWeakPassword      = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrPasswordMismatch  = New(CodePasswordMismatch, "Passwords are not the same!", http.StatusBadRequest)
	ErrImageRequired     = New(CodeImageRequired, "Please upload an image", http.StatusBadRequest)
	ErrUnsupportedImage  = New(CodeUnsupportedImage, "Unsupported image format", http.StatusBadRequest)
	ErrResetTokenInvalid = New(CodeResetTokenInvalid, "Token is invalid or has expired", http.StatusBadRequest)

	// Resources
	ErrNoDocument        = New(CodeNotFound, "No document found with that ID", http.StatusNotFound)
	ErrUsernameTaken     = New(CodeUsernameTaken, "Username already exists", http.StatusConflict)
	ErrCategoryNameTaken = New(CodeCategoryNameTaken, "Category name already exists", http.StatusConflict)
	ErrUnknownCategory   = New(CodeUnknownCategory, "Referenced category does not exist", http.StatusBadRequest)
)

// ValidationError builds a 400 carrying per-field details.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

// BadRequest builds a 400 with a custom message.
func BadRequest(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// InternalError wraps an unexpected failure.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}
