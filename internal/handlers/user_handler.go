package handlers

import (
	"net/http"
	"time"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/auth"
	"shop_backend/internal/middleware"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// UserHandler covers profile access and owner-side admin account management.
type UserHandler struct {
	*BaseHandler
	users repositories.UserRepository
}

func NewUserHandler(base *BaseHandler, users repositories.UserRepository) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		users:       users,
	}
}

type updateMeRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type updateUserRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": user},
	})
}

// UpdateMe changes the authenticated user's username/email. Password changes
// are routed to their own endpoint.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if req.Password != "" || req.PasswordConfirm != "" {
		apperrors.HandleError(c, apperrors.BadRequest(
			"This route is not for password updates. Please use /updateMyPassword"))
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := h.users.Save(c.Request.Context(), user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			h.Error(c, apperrors.ErrUsernameTaken)
			return
		}
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": user},
	})
}

// ListAdmins returns every admin account. Owner-gated.
func (h *UserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.users.FindByRole(c.Request.Context(), models.UserRoleAdmin)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(admins),
		"data":    gin.H{"admins": admins},
	})
}

// GetUser fetches one account by id. Owner-gated.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": user},
	})
}

// UpdateUser updates an account's username, email or password. Owner-gated.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	if req.Password != "" || req.PasswordConfirm != "" {
		if req.Password != req.PasswordConfirm {
			apperrors.HandleError(c, apperrors.ErrPasswordMismatch)
			return
		}
		if err := auth.ValidatePassword(req.Password); err != nil {
			apperrors.HandleError(c, apperrors.ErrWeakPassword)
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.Error(c, apperrors.InternalError(err))
			return
		}
		now := time.Now()
		user.PasswordHash = hash
		user.PasswordChangedAt = &now
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := h.users.Save(c.Request.Context(), user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			h.Error(c, apperrors.ErrUsernameTaken)
			return
		}
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": user},
	})
}

// DeleteUser deactivates an account. Owner-gated; the account disappears from
// every lookup, including token resolution, but the row stays.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
