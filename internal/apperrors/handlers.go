package apperrors

import (
	"net/http"

	"shop_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope:
// {"status":"error","code":...,"message":...,"details":...}
type ErrorResponse struct {
	Status  string      `json:"status"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// debug controls whether internal error details leak to clients. Production
// disables it during startup.
var debug = true

// SetDebug toggles internal error detail exposure.
func SetDebug(enabled bool) {
	debug = enabled
}

// HandleError is the terminal error translator: it maps any propagated error
// to its HTTP status and writes the uniform envelope, then aborts the chain.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		// Unknown failure kind: wrap as internal.
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.WithError(err).Error("server error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		if !debug {
			appErr = New(CodeInternalError, "Internal server error", http.StatusInternalServerError)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Status:  "error",
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
