package auth_test

import (
	"testing"
	"time"

	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestNewTokenManager(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := auth.NewTokenManager("", time.Hour)
		require.Error(t, err)
	})

	t.Run("accepts non-empty secret", func(t *testing.T) {
		manager, err := auth.NewTokenManager(testSecret, time.Hour)
		require.NoError(t, err)
		require.NotNil(t, manager)
	})
}

func TestIssueAndVerify(t *testing.T) {
	manager, err := auth.NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("round trip returns the subject", func(t *testing.T) {
		token, err := manager.Issue("user@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := manager.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", subject)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user@example.com",
			"iat": time.Now().Add(-2 * time.Hour).Unix(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := manager.Verify(expired)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		tampered := signToken(t, "some-other-secret", jwt.MapClaims{
			"sub": "user@example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := manager.Verify(tampered)
		assert.ErrorIs(t, err, auth.ErrTokenSignature)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Verify("not-a-token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("token without subject", func(t *testing.T) {
		anonymous := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := manager.Verify(anonymous)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
