package middleware

import (
	"strings"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/auth"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// userKey is the gin context key the resolved user is attached under.
const userKey = "currentUser"

// Protect is the authentication gate: it extracts the bearer token (falling
// back to the "jwt" cookie set at login), verifies it, resolves the user from
// the store and attaches it to the context. Every failure (missing token,
// bad token, a user that no longer exists) aborts the chain with 401.
func Protect(tokens *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrNotLoggedIn)
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// The token decodes but its user is gone or deactivated; this is
			// a hard stop, the request must not proceed unauthenticated.
			apperrors.HandleError(c, apperrors.ErrUserGone)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRoles is the role gate: it rejects with 403 unless the attached
// user's role is in the allow-list. Must be mounted after Protect.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !roleSet[user.Role] {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by Protect, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("jwt"); err == nil {
		return cookie
	}
	return ""
}
