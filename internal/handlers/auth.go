package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/types"
	"github.com/brightdesk-dev/brightdesk/internal/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	token, err := h.auth.Authenticate(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same message for unknown emails and wrong passwords.
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
			return
		}
		log.Printf("Login failed for %s: %v", body.Email, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{Token: token})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		validationFailed(ctx, validationDetails(err))
		return
	}

	user, err := h.auth.Register(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		log.Printf("Registration failed for %s: %v", body.Email, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		},
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": currentUser,
	})
}
