package services

import (
	"testing"

	"github.com/BakhatBug/Keto-Slim/models"

	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserWithDefaultRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register("new@test.com", "secret123", "New User")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "new@test.com", user.Email)
	require.Equal(t, []string{models.RoleUser}, user.Roles)
	require.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register("dup@test.com", "secret123", "First")
	require.NoError(t, err)

	_, _, err = svc.Register("dup@test.com", "different", "Second")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	registered, _, err := svc.Register("login@test.com", "secret123", "Login User")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login("login@test.com", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("login@test.com", "wrong")
		var unauthorized *UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nobody@test.com", "secret123")
		var unauthorized *UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
	})
}

func TestGetUserByID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	registered, _, err := svc.Register("byid@test.com", "secret123", "ById")
	require.NoError(t, err)

	user, err := svc.GetUserByID(registered.ID)
	require.NoError(t, err)
	require.Equal(t, "byid@test.com", user.Email)

	_, err = svc.GetUserByID(999999)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
