package scheduler_test

import (
	"testing"
	"time"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/scheduler"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepMarksOverdueInvoices(t *testing.T) {
	database := testutil.NewDB(t)
	invoices := services.NewInvoiceService(database)
	projects := services.NewProjectService(database)

	client := models.Client{Name: "Acme", Email: "acme@test", Phone: "1", Address: "x"}
	require.NoError(t, database.Create(&client).Error)

	project, err := projects.Create(models.Project{
		Name:                 "Audit",
		ClientID:             client.ID,
		ProductOwner:         "Dana",
		ExpectedDeliveryDate: models.Today().AddDays(30),
		Deadline:             models.Today().AddDays(60),
	})
	require.NoError(t, err)

	invoice, err := invoices.Create(models.Invoice{
		Amount:    100,
		ClientID:  client.ID,
		ProjectID: project.ID,
		DueDate:   models.Today().AddDays(-1),
	})
	require.NoError(t, err)
	require.Equal(t, models.InvoicePending, invoice.Status)

	sweep := scheduler.New(invoices, time.Hour)
	sweep.Start()
	defer sweep.Stop()

	// The first sweep runs immediately on Start.
	require.Eventually(t, func() bool {
		refreshed, err := invoices.Get(invoice.ID)
		return err == nil && refreshed.Status == models.InvoiceOverdue
	}, 2*time.Second, 20*time.Millisecond)

	sweep.Stop()

	refreshed, err := invoices.Get(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceOverdue, refreshed.Status)
}
