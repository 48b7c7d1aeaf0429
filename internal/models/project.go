package models

import "time"

const DefaultProjectStatus = "New Onboarding"

type Project struct {
	ID                   uint    `gorm:"primaryKey"`
	Name                 string  `gorm:"size:255;not null"`
	Status               string  `gorm:"size:50;not null"`
	Budget               float64 `gorm:"not null;default:0"`
	AmountSpent          float64 `gorm:"not null;default:0"`
	ExpectedDeliveryDate Date    `gorm:"type:date;not null"`
	Deadline             Date    `gorm:"type:date;not null"`
	OnboardDate          Date    `gorm:"type:date;not null"`
	ProductOwner         string  `gorm:"size:255;not null"`
	LastUpdateComments   string  `gorm:"type:text"`
	ClientID             uint    `gorm:"not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Relationships
	Client Client `gorm:"foreignKey:ClientID"`
}
