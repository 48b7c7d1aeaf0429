package services_test

import (
	"testing"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, database *gorm.DB, email, role string) models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "$2a$10$placeholderhashplaceholderhashplaceholderha",
		Role:     role,
	}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func TestApprove(t *testing.T) {
	database := testutil.NewDB(t)
	admin := services.NewAdminService(database)
	user := seedUser(t, database, "new@brightdesk.test", models.RoleUser)

	require.False(t, user.IsActive)

	t.Run("activates the user", func(t *testing.T) {
		approved, err := admin.Approve(user.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsActive)
	})

	t.Run("is idempotent", func(t *testing.T) {
		approved, err := admin.Approve(user.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := admin.Approve(9999)
		assert.True(t, services.IsNotFound(err))
	})
}

func TestAssignRole(t *testing.T) {
	database := testutil.NewDB(t)
	admin := services.NewAdminService(database)
	user := seedUser(t, database, "member@brightdesk.test", models.RoleUser)

	t.Run("normalizes to upper-case", func(t *testing.T) {
		updated, err := admin.AssignRole(user.ID, "manager")
		require.NoError(t, err)
		assert.Equal(t, models.RoleManager, updated.Role)
	})

	t.Run("rejects unknown roles and leaves the stored role unchanged", func(t *testing.T) {
		_, err := admin.AssignRole(user.ID, "superadmin")

		var invalidRole *services.InvalidRoleError
		require.ErrorAs(t, err, &invalidRole)
		assert.Equal(t, "superadmin", invalidRole.Role)

		var stored models.User
		require.NoError(t, database.First(&stored, user.ID).Error)
		assert.Equal(t, models.RoleManager, stored.Role)
	})

	t.Run("validates the role before looking up the user", func(t *testing.T) {
		_, err := admin.AssignRole(9999, "superadmin")

		var invalidRole *services.InvalidRoleError
		assert.ErrorAs(t, err, &invalidRole)
	})

	t.Run("unknown user with a valid role", func(t *testing.T) {
		_, err := admin.AssignRole(9999, "ADMIN")
		assert.True(t, services.IsNotFound(err))
	})
}
