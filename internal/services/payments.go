package services

import (
	"log"
	"time"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"gorm.io/gorm"
)

// PaymentService creates Stripe payment intents and records a local
// payment row for invoice payments.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB, stripeSecret string) *PaymentService {
	stripe.Key = stripeSecret
	return &PaymentService{db: db}
}

// CreateIntent creates a generic payment intent and returns the client
// secret the frontend needs to confirm it.
func (s *PaymentService) CreateIntent(amount int64, currency string) (map[string]interface{}, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"clientSecret": intent.ClientSecret,
	}, nil
}

// PayInvoice creates a payment intent for an invoice and persists a
// payment record carrying a fresh reference.
func (s *PaymentService) PayInvoice(invoiceID, projectID uint, amount int64, currency string) (map[string]interface{}, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	var clientID uint
	var invoice models.Invoice
	if err := s.db.First(&invoice, invoiceID).Error; err == nil {
		clientID = invoice.ClientID
	}

	payment := models.Payment{
		Reference:   uuid.NewString(),
		InvoiceID:   invoiceID,
		ClientID:    clientID,
		Amount:      amount,
		Currency:    currency,
		Status:      "Payment Initiated",
		PaymentDate: time.Now(),
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	log.Printf("Payment %s initiated for invoice %d", payment.Reference, invoiceID)

	return map[string]interface{}{
		"invoiceId":    invoiceID,
		"projectId":    projectID,
		"amount":       amount,
		"currency":     currency,
		"clientSecret": intent.ClientSecret,
		"reference":    payment.Reference,
		"status":       payment.Status,
	}, nil
}
