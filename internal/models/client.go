package models

import "time"

type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string `gorm:"not null"`
	Address   string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Projects []Project `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Invoices []Invoice `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
