package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/brightdesk-dev/brightdesk/internal/types"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Approve(ctx *gin.Context) {
	userID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	user, err := h.admin.Approve(userID)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to approve user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User access granted",
		"user": types.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		},
	})
}

func (h *AdminHandler) AssignRole(ctx *gin.Context) {
	userID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	role := ctx.Query("role")
	if role == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Role query parameter is required"})
		return
	}

	user, err := h.admin.AssignRole(userID, role)
	if err != nil {
		var invalidRole *services.InvalidRoleError
		switch {
		case errors.As(err, &invalidRole):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": invalidRole.Error()})
		case services.IsNotFound(err):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("Failed to assign role to user %d: %v", userID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User role updated to " + user.Role,
		"user": types.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		},
	})
}
