package handlers

import (
	"shop_backend/internal/apperrors"
	"shop_backend/internal/repositories"
	"shop_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every resource handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidateJSON binds the JSON body into obj and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body: "+err.Error()))
		return false
	}
	return h.Validate(c, obj)
}

// Validate runs struct validation only, for objects assembled from multipart
// forms. On failure it writes the error response and returns false.
func (h *BaseHandler) Validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// Error translates store-level errors into their API shape and delegates to
// the terminal error translator.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, repositories.ErrNotFound):
		apperrors.HandleError(c, apperrors.ErrNoDocument)
	case apperrors.Is(err, repositories.ErrInvalidID):
		apperrors.HandleError(c, apperrors.ErrInvalidID)
	case apperrors.Is(err, repositories.ErrDuplicate):
		apperrors.HandleError(c, apperrors.BadRequest("Duplicate value for a unique field"))
	default:
		apperrors.HandleError(c, err)
	}
}
