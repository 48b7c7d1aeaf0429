package handlers

import (
	"log"
	"net/http"

	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type PaymentRequest struct {
	Amount   int64  `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

type InvoicePaymentRequest struct {
	InvoiceID uint   `json:"invoiceId" binding:"required"`
	ProjectID uint   `json:"projectId" binding:"required"`
	Amount    int64  `json:"amount" binding:"required"`
	Currency  string `json:"currency" binding:"required"`
}

func (h *PaymentHandler) CreateIntent(ctx *gin.Context) {
	var body PaymentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	response, err := h.payments.CreateIntent(body.Amount, body.Currency)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) PayInvoice(ctx *gin.Context) {
	var body InvoicePaymentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	response, err := h.payments.PayInvoice(body.InvoiceID, body.ProjectID, body.Amount, body.Currency)
	if err != nil {
		log.Printf("Failed to pay invoice %d: %v", body.InvoiceID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
