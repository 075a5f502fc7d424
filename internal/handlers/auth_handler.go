package handlers

import (
	"net/http"
	"time"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/auth"
	"shop_backend/internal/middleware"
	"shop_backend/internal/models"
	"shop_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes login, account creation and the password flows. Every
// success response carries a fresh token, both in the body and as an httpOnly
// "jwt" cookie.
type AuthHandler struct {
	*BaseHandler
	authService  services.AuthService
	tokens       *auth.TokenManager
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, tokens *auth.TokenManager, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  base,
		authService:  authService,
		tokens:       tokens,
		cookieTTL:    cookieTTL,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type changePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// Login issues a token for valid credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.BadRequest("Username and password are required"))
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.sendToken(c, user, http.StatusOK)
}

// Signup creates an owner-role account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" || req.PasswordConfirm == "" {
		apperrors.HandleError(c, apperrors.BadRequest("Username, password, and password confirmation are required"))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.PasswordConfirm, models.UserRoleOwner)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.sendToken(c, user, http.StatusCreated)
}

// AddAdmin creates an admin-role account. The route is owner-gated.
func (h *AuthHandler) AddAdmin(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}
	if req.Username == "" || req.Password == "" || req.PasswordConfirm == "" {
		apperrors.HandleError(c, apperrors.BadRequest("Username, password, and password confirmation are required"))
		return
	}

	admin, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.PasswordConfirm, models.UserRoleAdmin)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.sendToken(c, admin, http.StatusCreated)
}

// UpdatePassword changes the authenticated user's password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrNotLoggedIn)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	updated, err := h.authService.ChangePassword(c.Request.Context(), user.ID, req.PasswordCurrent, req.Password, req.PasswordConfirm)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.sendToken(c, updated, http.StatusOK)
}

// ForgotPassword mails a reset token. The response does not reveal whether
// the address exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		apperrors.HandleError(c, apperrors.BadRequest("Email is required"))
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Token sent to email",
	})
}

// ResetPassword consumes a reset token and sets the new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	user, err := h.authService.ResetPassword(c.Request.Context(), c.Param("token"), req.Password, req.PasswordConfirm)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.sendToken(c, user, http.StatusOK)
}

// sendToken issues a token for the user, sets the auth cookie and writes the
// success envelope. The user's hashed password never reaches the payload (the
// model keeps it out of JSON).
func (h *AuthHandler) sendToken(c *gin.Context, user *models.User, status int) {
	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.Error(c, apperrors.InternalError(err))
		return
	}

	c.SetCookie("jwt", token, int(h.cookieTTL.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(status, gin.H{
		"status": "success",
		"token":  token,
		"data":   gin.H{"user": user},
	})
}
