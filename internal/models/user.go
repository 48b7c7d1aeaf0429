package models

import (
	"strings"
	"time"
)

const (
	RoleAdmin   = "ADMIN"
	RoleUser    = "USER"
	RoleManager = "MANAGER"
)

// ValidRole reports whether role is one of the recognized roles,
// matched case-insensitively.
func ValidRole(role string) bool {
	switch strings.ToUpper(role) {
	case RoleAdmin, RoleUser, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:false"`
	Role      string `gorm:"not null;default:USER"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activate enables the account. New accounts start disabled until an
// admin approves them.
func (u *User) Activate() {
	u.IsActive = true
}

func (u *User) AssignRole(role string) {
	u.Role = role
}
