package models

import (
	"fmt"
	"strings"
	"time"
)

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "PAID"
	InvoicePending InvoiceStatus = "PENDING"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// ParseInvoiceStatus matches a status case-insensitively against the
// known values.
func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(InvoicePaid):
		return InvoicePaid, nil
	case string(InvoicePending):
		return InvoicePending, nil
	case string(InvoiceOverdue):
		return InvoiceOverdue, nil
	}
	return "", fmt.Errorf("invalid invoice status: %s", value)
}

type Invoice struct {
	ID            uint          `gorm:"primaryKey"`
	InvoiceNumber string        `gorm:"size:50;not null"`
	Amount        float64       `gorm:"not null"`
	IssueDate     Date          `gorm:"type:date;not null"`
	DueDate       Date          `gorm:"type:date;not null"`
	Status        InvoiceStatus `gorm:"size:20;not null"`
	ClientID      uint          `gorm:"not null;index"`
	ProjectID     uint          `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relationships
	Client Client `gorm:"foreignKey:ClientID"`
}
