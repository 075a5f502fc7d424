package repositories

import (
	"context"
	"testing"
	"time"

	"shop_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeUser(t *testing.T, repo UserRepository, username string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@shop.local",
		Role:         role,
		PasswordHash: "$2a$12$fakefakefakefakefakefake",
		Active:       true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserLookups(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := makeUser(t, repo, "aliya", models.UserRoleOwner)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aliya", byID.Username)

	byName, err := repo.FindByUsername(ctx, "aliya")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "aliya@shop.local")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	makeUser(t, repo, "aliya", models.UserRoleOwner)

	dup := &models.User{
		Username:     "aliya",
		Email:        "other@shop.local",
		Role:         models.UserRoleAdmin,
		PasswordHash: "x",
		Active:       true,
	}
	assert.ErrorIs(t, repo.Create(context.Background(), dup), ErrDuplicate)
}

func TestFindByRole(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	makeUser(t, repo, "boss", models.UserRoleOwner)
	makeUser(t, repo, "admin1", models.UserRoleAdmin)
	makeUser(t, repo, "admin2", models.UserRoleAdmin)

	admins, err := repo.FindByRole(ctx, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 2)

	owners, err := repo.FindByRole(ctx, models.UserRoleOwner)
	require.NoError(t, err)
	assert.Len(t, owners, 1)
}

func TestDeactivateHidesUserEverywhere(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := makeUser(t, repo, "temp-admin", models.UserRoleAdmin)

	require.NoError(t, repo.Deactivate(ctx, user.ID))

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByUsername(ctx, "temp-admin")
	assert.ErrorIs(t, err, ErrNotFound)

	admins, err := repo.FindByRole(ctx, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, admins)

	// Deactivating again reports a missing document.
	assert.ErrorIs(t, repo.Deactivate(ctx, user.ID), ErrNotFound)
}

func TestFindByResetToken(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := makeUser(t, repo, "forgetful", models.UserRoleOwner)

	future := time.Now().Add(10 * time.Minute)
	user.PasswordResetToken = "stored-hash"
	user.PasswordResetExpires = &future
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.FindByResetToken(ctx, "stored-hash")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.FindByResetToken(ctx, "wrong-hash")
	assert.ErrorIs(t, err, ErrNotFound)

	past := time.Now().Add(-time.Minute)
	user.PasswordResetExpires = &past
	require.NoError(t, repo.Save(ctx, user))

	_, err = repo.FindByResetToken(ctx, "stored-hash")
	assert.ErrorIs(t, err, ErrNotFound)
}
