package services_test

import (
	"testing"
	"time"

	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*services.AuthService, *auth.TokenManager) {
	t.Helper()

	database := testutil.NewDB(t)
	tokens, err := auth.NewTokenManager("test-signing-secret", time.Hour)
	require.NoError(t, err)
	return services.NewAuthService(database, tokens), tokens
}

func TestAuthenticate(t *testing.T) {
	authService, tokens := newAuthService(t)

	registered, err := authService.Register("a@b.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.False(t, registered.IsActive)
	assert.Equal(t, models.RoleUser, registered.Role)

	t.Run("valid credentials yield a token carrying the email", func(t *testing.T) {
		token, err := authService.Authenticate("a@b.com", "hunter2hunter2")
		require.NoError(t, err)

		subject, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", subject)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, wrongPassword := authService.Authenticate("a@b.com", "wrong")
		_, unknownEmail := authService.Authenticate("nobody@b.com", "hunter2hunter2")

		assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, services.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})
}

func TestRegister(t *testing.T) {
	authService, _ := newAuthService(t)

	first, err := authService.Register("dup@b.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", first.Password)

	_, err = authService.Register("dup@b.com", "otherpassword")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}
