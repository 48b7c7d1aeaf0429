package services_test

import (
	"testing"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDeleteCascades(t *testing.T) {
	database := testutil.NewDB(t)
	clients := services.NewClientService(database)
	projects := services.NewProjectService(database)
	client := seedClient(t, database)

	project, err := projects.Create(sampleProject(client.ID))
	require.NoError(t, err)
	require.NoError(t, projects.Archive(project.ID))

	other, err := projects.Create(sampleProject(client.ID))
	require.NoError(t, err)

	require.NoError(t, clients.Delete(client.ID))

	_, err = clients.Get(client.ID)
	assert.True(t, services.IsNotFound(err))

	_, err = projects.Get(other.ID)
	assert.True(t, services.IsNotFound(err))

	var archivedCount int64
	require.NoError(t, database.Model(&models.DeletedProject{}).Count(&archivedCount).Error)
	assert.Equal(t, int64(0), archivedCount)

	t.Run("deleting an unknown client", func(t *testing.T) {
		err := clients.Delete(9999)
		assert.True(t, services.IsNotFound(err))
	})
}
