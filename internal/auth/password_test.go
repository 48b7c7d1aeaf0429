package auth_test

import (
	"testing"

	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, auth.CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, auth.CheckPassword(hash, "wrong password"))
	assert.False(t, auth.CheckPassword("not-a-hash", "anything"))
}
