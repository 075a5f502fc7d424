package services

import (
	"context"
	"net/http"
	"time"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/auth"
	"shop_backend/internal/email"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"
)

// resetTokenTTL is how long a password-reset token stays valid.
const resetTokenTTL = 10 * time.Minute

// AuthService owns account credentials: creation, login checks and every
// password mutation. Hashing always happens here, before anything is
// persisted.
type AuthService interface {
	Register(ctx context.Context, username, emailAddr, password, passwordConfirm string, role models.UserRole) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword, passwordConfirm string) (*models.User, error)
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, rawToken, newPassword, passwordConfirm string) (*models.User, error)
}

type authService struct {
	users repositories.UserRepository
	mail  email.Provider
}

func NewAuthService(users repositories.UserRepository, mail email.Provider) AuthService {
	return &authService{
		users: users,
		mail:  mail,
	}
}

func (s *authService) Register(ctx context.Context, username, emailAddr, password, passwordConfirm string, role models.UserRole) (*models.User, error) {
	if password != passwordConfirm {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !models.ValidRole(role) {
		return nil, apperrors.BadRequest("Invalid user role")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Email:        emailAddr,
		Role:         role,
		PasswordHash: hash,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, passwordConfirm string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserGone
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return nil, apperrors.ErrWrongPassword
	}

	if err := s.setPassword(user, newPassword, passwordConfirm); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// ForgotPassword stores a hashed reset token and mails the raw one. An
// unknown email is reported as success so the endpoint cannot be used to
// probe for accounts.
func (s *authService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	raw, hash, err := auth.NewResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expires := time.Now().Add(resetTokenTTL)
	user.PasswordResetToken = hash
	user.PasswordResetExpires = &expires
	if err := s.users.Save(ctx, user); err != nil {
		return apperrors.InternalError(err)
	}

	msg := &email.Email{
		To:      user.Email,
		Subject: "Your password reset token (valid for 10 minutes)",
		Body: "Forgot your password? Submit a PATCH request with your new password " +
			"and password confirmation to /api/users/resetPassword/" + raw + ".\n" +
			"If you didn't forget your password, please ignore this email.",
	}
	if err := s.mail.Send(msg); err != nil {
		// Roll the token back; a token nobody received must not stay usable.
		user.PasswordResetToken = ""
		user.PasswordResetExpires = nil
		_ = s.users.Save(ctx, user)
		return apperrors.Wrap(err, apperrors.CodeMailError, "There was an error sending the email. Try again", http.StatusInternalServerError)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, rawToken, newPassword, passwordConfirm string) (*models.User, error) {
	user, err := s.users.FindByResetToken(ctx, auth.HashResetToken(rawToken))
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrResetTokenInvalid
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.setPassword(user, newPassword, passwordConfirm); err != nil {
		return nil, err
	}
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// setPassword validates and hashes a new password onto the user, stamping
// PasswordChangedAt.
func (s *authService) setPassword(user *models.User, password, passwordConfirm string) error {
	if password != passwordConfirm {
		return apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.ErrWeakPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	now := time.Now()
	user.PasswordHash = hash
	user.PasswordChangedAt = &now
	return nil
}
