package handlers

import (
	"log"
	"net/http"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

type InvoiceRequest struct {
	InvoiceNumber string      `json:"invoiceNumber"`
	Amount        float64     `json:"amount"`
	IssueDate     models.Date `json:"issueDate"`
	DueDate       models.Date `json:"dueDate"`
	Status        string      `json:"status"`
	ClientID      uint        `json:"clientId"`
	ProjectID     uint        `json:"projectId"`
}

type InvoiceResponse struct {
	ID            uint                 `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	Amount        float64              `json:"amount"`
	IssueDate     models.Date          `json:"issueDate"`
	DueDate       models.Date          `json:"dueDate"`
	Status        models.InvoiceStatus `json:"status"`
	ClientID      uint                 `json:"clientId"`
	ProjectID     uint                 `json:"projectId"`
}

func toInvoiceResponse(invoice models.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Amount,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Status:        invoice.Status,
		ClientID:      invoice.ClientID,
		ProjectID:     invoice.ProjectID,
	}
}

// toModel parses the optional status, returning validation details on
// an unrecognized value.
func (r *InvoiceRequest) toModel() (models.Invoice, map[string]string) {
	invoice := models.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		Amount:        r.Amount,
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
	}

	if r.Status != "" {
		status, err := models.ParseInvoiceStatus(r.Status)
		if err != nil {
			return invoice, map[string]string{"status": err.Error()}
		}
		invoice.Status = status
	}

	return invoice, nil
}

func (h *InvoiceHandler) Create(ctx *gin.Context) {
	var body InvoiceRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	details := make(map[string]string)
	if body.ClientID == 0 {
		details["clientId"] = "clientId is required"
	}
	if body.ProjectID == 0 {
		details["projectId"] = "projectId is required"
	}
	if len(details) > 0 {
		validationFailed(ctx, details)
		return
	}

	invoice, statusDetails := body.toModel()
	if statusDetails != nil {
		validationFailed(ctx, statusDetails)
		return
	}

	created, err := h.invoices.Create(invoice)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create invoice: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	ctx.JSON(http.StatusCreated, toInvoiceResponse(*created))
}

func (h *InvoiceHandler) List(ctx *gin.Context) {
	invoices, err := h.invoices.List()
	if err != nil {
		log.Printf("Failed to list invoices: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoices"})
		return
	}

	response := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		response = append(response, toInvoiceResponse(invoice))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *InvoiceHandler) Get(ctx *gin.Context) {
	invoiceID, ok := parseID(ctx, "invoiceId")
	if !ok {
		return
	}

	invoice, err := h.invoices.Get(invoiceID)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to fetch invoice %d: %v", invoiceID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		return
	}

	ctx.JSON(http.StatusOK, toInvoiceResponse(*invoice))
}

func (h *InvoiceHandler) ByProject(ctx *gin.Context) {
	projectID, ok := parseID(ctx, "projectId")
	if !ok {
		return
	}

	invoices, err := h.invoices.ByProject(projectID)
	if err != nil {
		log.Printf("Failed to list invoices for project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoices"})
		return
	}

	response := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		response = append(response, toInvoiceResponse(invoice))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *InvoiceHandler) Update(ctx *gin.Context) {
	invoiceID, ok := parseID(ctx, "invoiceId")
	if !ok {
		return
	}

	var body InvoiceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	invoice, statusDetails := body.toModel()
	if statusDetails != nil {
		validationFailed(ctx, statusDetails)
		return
	}

	updated, err := h.invoices.Update(invoiceID, invoice)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to update invoice %d: %v", invoiceID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	ctx.JSON(http.StatusOK, toInvoiceResponse(*updated))
}

func (h *InvoiceHandler) Delete(ctx *gin.Context) {
	invoiceID, ok := parseID(ctx, "invoiceId")
	if !ok {
		return
	}

	if err := h.invoices.Delete(invoiceID); err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to delete invoice %d: %v", invoiceID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
