package services_test

import (
	"testing"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceCreate(t *testing.T) {
	database := testutil.NewDB(t)
	invoices := services.NewInvoiceService(database)
	projects := services.NewProjectService(database)
	client := seedClient(t, database)

	project, err := projects.Create(sampleProject(client.ID))
	require.NoError(t, err)

	t.Run("defaults number, dates and status", func(t *testing.T) {
		created, err := invoices.Create(models.Invoice{
			Amount:    1500,
			ClientID:  client.ID,
			ProjectID: project.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, "INV-0001", created.InvoiceNumber)
		assert.Equal(t, models.InvoicePending, created.Status)
		assert.Equal(t, models.Today().String(), created.IssueDate.String())
		assert.Equal(t, models.Today().AddDays(7).String(), created.DueDate.String())
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := invoices.Create(models.Invoice{
			Amount:    100,
			ClientID:  client.ID,
			ProjectID: 9999,
		})
		assert.True(t, services.IsNotFound(err))
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := invoices.Create(models.Invoice{
			Amount:    100,
			ClientID:  9999,
			ProjectID: project.ID,
		})
		assert.True(t, services.IsNotFound(err))
	})
}

func TestInvoiceStatusParsing(t *testing.T) {
	status, err := models.ParseInvoiceStatus("overdue")
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceOverdue, status)

	_, err = models.ParseInvoiceStatus("written-off")
	assert.Error(t, err)
}

func TestMarkOverdue(t *testing.T) {
	database := testutil.NewDB(t)
	invoices := services.NewInvoiceService(database)
	projects := services.NewProjectService(database)
	client := seedClient(t, database)

	project, err := projects.Create(sampleProject(client.ID))
	require.NoError(t, err)

	pastDue, err := invoices.Create(models.Invoice{
		Amount:    100,
		ClientID:  client.ID,
		ProjectID: project.ID,
		DueDate:   models.Today().AddDays(-3),
	})
	require.NoError(t, err)

	current, err := invoices.Create(models.Invoice{
		Amount:    200,
		ClientID:  client.ID,
		ProjectID: project.ID,
		DueDate:   models.Today().AddDays(3),
	})
	require.NoError(t, err)

	paid, err := invoices.Create(models.Invoice{
		Amount:    300,
		ClientID:  client.ID,
		ProjectID: project.ID,
		DueDate:   models.Today().AddDays(-3),
		Status:    models.InvoicePaid,
	})
	require.NoError(t, err)

	marked, err := invoices.MarkOverdue(models.Today())
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	refreshed, err := invoices.Get(pastDue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceOverdue, refreshed.Status)

	refreshed, err = invoices.Get(current.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePending, refreshed.Status)

	refreshed, err = invoices.Get(paid.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, refreshed.Status)
}
