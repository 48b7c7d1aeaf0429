package services

import (
	"errors"
	"log"
	"strings"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"gorm.io/gorm"
)

// AdminService mutates user activation state and role assignment. It
// does not check the caller's authority; the authorization policy has
// already gated /api/admin/** before these run.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Approve sets the user active. Approving an already-active user is a
// silent success.
func (s *AdminService) Approve(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User", ID: userID}
		}
		return nil, err
	}

	if user.IsActive {
		return &user, nil
	}

	user.Activate()
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	log.Printf("User %d approved", userID)
	return &user, nil
}

// AssignRole sets the user's role after validating it against the
// allow-list, case-insensitively. The role is persisted upper-case.
// Validation happens before any storage access.
func (s *AdminService) AssignRole(userID uint, role string) (*models.User, error) {
	normalized := strings.ToUpper(strings.TrimSpace(role))
	if !models.ValidRole(normalized) {
		return nil, &InvalidRoleError{Role: role}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User", ID: userID}
		}
		return nil, err
	}

	user.AssignRole(normalized)
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	log.Printf("User %d role updated to %s", userID, normalized)
	return &user, nil
}
