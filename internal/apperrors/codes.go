package apperrors

// Error codes grouped by concern.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidID        ErrorCode = "INVALID_ID"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"

	// Resources
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeUsernameTaken       ErrorCode = "USERNAME_TAKEN"
	CodeCategoryNameTaken   ErrorCode = "CATEGORY_NAME_TAKEN"
	CodeUnknownCategory     ErrorCode = "UNKNOWN_CATEGORY"
	CodeResetTokenInvalid   ErrorCode = "RESET_TOKEN_INVALID"
	CodeImageRequired       ErrorCode = "IMAGE_REQUIRED"
	CodeUnsupportedImage    ErrorCode = "UNSUPPORTED_IMAGE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeMailError     ErrorCode = "MAIL_ERROR"
)
