package services

import (
	"errors"
	"strings"

	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/brightdesk-dev/brightdesk/internal/models"
	"gorm.io/gorm"
)

// AuthService verifies credentials and issues bearer tokens. It keeps
// no session state; a token is the only artifact of a login.
type AuthService struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Authenticate checks the email/password pair and returns a signed
// token whose subject is the email. Unknown emails and wrong passwords
// yield the same ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email)
}

// Register creates a disabled account with the default role. An admin
// must approve it before it carries any authority beyond its role.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hash,
		IsActive: false,
		Role:     models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail resolves a user for the request authentication filter.
// It performs a read only.
func (s *AuthService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
