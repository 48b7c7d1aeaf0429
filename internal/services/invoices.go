package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"gorm.io/gorm"
)

// InvoiceService manages invoices against clients and projects.
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// Create persists an invoice, resolving its client and project and
// defaulting the number, dates and status when absent.
func (s *InvoiceService) Create(invoice models.Invoice) (*models.Invoice, error) {
	var client models.Client
	if err := s.db.First(&client, invoice.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Client", ID: invoice.ClientID}
		}
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, invoice.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Project", ID: invoice.ProjectID}
		}
		return nil, err
	}

	if invoice.InvoiceNumber == "" {
		number, err := s.nextInvoiceNumber()
		if err != nil {
			return nil, err
		}
		invoice.InvoiceNumber = number
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = models.Today()
	}
	if invoice.DueDate.IsZero() {
		invoice.DueDate = invoice.IssueDate.AddDays(7)
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoicePending
	}

	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, err
	}

	log.Printf("Created invoice %s for project %d", invoice.InvoiceNumber, invoice.ProjectID)
	return &invoice, nil
}

func (s *InvoiceService) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *InvoiceService) Get(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Invoice", ID: id}
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoiceService) ByProject(projectID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Where("project_id = ?", projectID).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Update applies the non-zero fields of details to the invoice.
func (s *InvoiceService) Update(id uint, details models.Invoice) (*models.Invoice, error) {
	invoice, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if details.InvoiceNumber != "" {
		invoice.InvoiceNumber = details.InvoiceNumber
	}
	if details.Amount != 0 {
		invoice.Amount = details.Amount
	}
	if !details.IssueDate.IsZero() {
		invoice.IssueDate = details.IssueDate
	}
	if !details.DueDate.IsZero() {
		invoice.DueDate = details.DueDate
	}
	if details.Status != "" {
		invoice.Status = details.Status
	}
	if details.ProjectID != 0 {
		var project models.Project
		if err := s.db.First(&project, details.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "Project", ID: details.ProjectID}
			}
			return nil, err
		}
		invoice.ProjectID = details.ProjectID
	}

	if err := s.db.Save(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(id uint) error {
	invoice, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(invoice).Error
}

// MarkOverdue flips pending invoices whose due date has passed to
// OVERDUE and returns how many rows changed. The scheduler calls this
// on every sweep.
func (s *InvoiceService) MarkOverdue(asOf models.Date) (int64, error) {
	result := s.db.Model(&models.Invoice{}).
		Where("status = ? AND due_date < ?", models.InvoicePending, asOf.Time).
		Update("status", models.InvoiceOverdue)
	return result.RowsAffected, result.Error
}

func (s *InvoiceService) nextInvoiceNumber() (string, error) {
	var count int64
	if err := s.db.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%04d", count+1), nil
}
