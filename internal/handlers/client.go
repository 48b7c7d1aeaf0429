package handlers

import (
	"log"
	"net/http"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type ClientResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func toClientResponse(client models.Client) ClientResponse {
	return ClientResponse{
		ID:      client.ID,
		Name:    client.Name,
		Email:   client.Email,
		Phone:   client.Phone,
		Address: client.Address,
	}
}

func (h *ClientHandler) Create(ctx *gin.Context) {
	var body ClientRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	client, err := h.clients.Create(models.Client{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		log.Printf("Failed to create client: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	ctx.JSON(http.StatusCreated, toClientResponse(*client))
}

func (h *ClientHandler) List(ctx *gin.Context) {
	clients, err := h.clients.List()
	if err != nil {
		log.Printf("Failed to list clients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve clients"})
		return
	}

	response := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		response = append(response, toClientResponse(client))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ClientHandler) Get(ctx *gin.Context) {
	clientID, ok := parseID(ctx, "clientId")
	if !ok {
		return
	}

	client, err := h.clients.Get(clientID)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to fetch client %d: %v", clientID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client"})
		return
	}

	ctx.JSON(http.StatusOK, toClientResponse(*client))
}

func (h *ClientHandler) Update(ctx *gin.Context) {
	clientID, ok := parseID(ctx, "clientId")
	if !ok {
		return
	}

	var body ClientRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	client, err := h.clients.Update(clientID, models.Client{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to update client %d: %v", clientID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}

	ctx.JSON(http.StatusOK, toClientResponse(*client))
}

func (h *ClientHandler) Delete(ctx *gin.Context) {
	clientID, ok := parseID(ctx, "clientId")
	if !ok {
		return
	}

	if err := h.clients.Delete(clientID); err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to delete client %d: %v", clientID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
