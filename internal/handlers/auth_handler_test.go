package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"shop_backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	s := newTestServer(t)
	s.signupOwner(t, "aliya")

	w := s.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "aliya",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	tokenStr, _ := body["token"].(string)
	require.NotEmpty(t, tokenStr)

	// The token must verify against the signing setup and carry the user id.
	claims, err := auth.NewTokenManager("test-secret", time.Hour).Parse(tokenStr)
	require.NoError(t, err)
	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, user["id"], claims.UserID)
	assert.Equal(t, "owner", user["role"])

	// No password material in the payload.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")

	// The token also rides an httpOnly cookie.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "jwt", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)
	s.signupOwner(t, "aliya")

	w := s.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "aliya",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	// An unknown username yields the exact same message.
	w = s.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "nobody",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	w = s.do(t, http.MethodPost, "/api/users/login", "", gin.H{"username": "aliya"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username and password are required")
}

func TestSignupValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/users/signup", "", gin.H{
		"username":        "aliya",
		"password":        "password123",
		"passwordConfirm": "different456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords are not the same!")

	w = s.do(t, http.MethodPost, "/api/users/signup", "", gin.H{
		"username":        "aliya",
		"password":        "short",
		"passwordConfirm": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.signupOwner(t, "aliya")
	w = s.do(t, http.MethodPost, "/api/users/signup", "", gin.H{
		"username":        "aliya",
		"password":        "password123",
		"passwordConfirm": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")
}

func TestAdminManagement(t *testing.T) {
	s := newTestServer(t)
	ownerToken := s.signupOwner(t, "boss")

	w := s.do(t, http.MethodPost, "/api/users/addAdmin", ownerToken, gin.H{
		"username":        "helper",
		"email":           "helper@shop.local",
		"password":        "password123",
		"passwordConfirm": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	adminToken := decodeBody(t, w)["token"].(string)

	// Admins cannot mint more admins.
	w = s.do(t, http.MethodPost, "/api/users/addAdmin", adminToken, gin.H{
		"username":        "another",
		"password":        "password123",
		"passwordConfirm": "password123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You do not have permission to perform this action")

	w = s.do(t, http.MethodGet, "/api/users", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["results"])

	w = s.do(t, http.MethodGet, "/api/users", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMeAndUpdateMe(t *testing.T) {
	s := newTestServer(t)
	token := s.signupOwner(t, "aliya")

	w := s.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "aliya", user["username"])

	w = s.do(t, http.MethodPatch, "/api/users/updateMe", token, gin.H{
		"username": "aliya2",
		"email":    "new@shop.local",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user = decodeBody(t, w)["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "aliya2", user["username"])
	assert.Equal(t, "new@shop.local", user["email"])

	// Password changes have their own route.
	w = s.do(t, http.MethodPatch, "/api/users/updateMe", token, gin.H{"password": "newpassword1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "This route is not for password updates. Please use /updateMyPassword")
}

func TestUpdateMyPassword(t *testing.T) {
	s := newTestServer(t)
	token := s.signupOwner(t, "aliya")

	w := s.do(t, http.MethodPatch, "/api/users/updateMyPassword", token, gin.H{
		"passwordCurrent": "wrong-password",
		"password":        "newpassword1",
		"passwordConfirm": "newpassword1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Your current password is wrong!")

	w = s.do(t, http.MethodPatch, "/api/users/updateMyPassword", token, gin.H{
		"passwordCurrent": "password123",
		"password":        "newpassword1",
		"passwordConfirm": "newpassword1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Old password no longer works, new one does.
	w = s.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "aliya",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "aliya",
		"password": "newpassword1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUserDeactivates(t *testing.T) {
	s := newTestServer(t)
	ownerToken := s.signupOwner(t, "boss")

	w := s.do(t, http.MethodPost, "/api/users/addAdmin", ownerToken, gin.H{
		"username":        "helper",
		"email":           "helper@shop.local",
		"password":        "password123",
		"passwordConfirm": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	adminToken := body["token"].(string)
	adminID := body["data"].(map[string]interface{})["user"].(map[string]interface{})["id"].(string)

	w = s.do(t, http.MethodDelete, "/api/users/"+adminID, ownerToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The deactivated admin's still-valid token must stop resolving.
	w = s.do(t, http.MethodGet, "/api/users/me", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User no longer exists")

	// And the account can no longer log in.
	w = s.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"username": "helper",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResetPasswordBadToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPatch, "/api/users/resetPassword/deadbeef", "", gin.H{
		"password":        "newpassword1",
		"passwordConfirm": "newpassword1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Token is invalid or has expired")
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	s := newTestServer(t)

	// Unknown addresses get the same success response as known ones.
	w := s.do(t, http.MethodPost, "/api/users/forgotPassword", "", gin.H{
		"email": "ghost@shop.local",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token sent to email")
}
