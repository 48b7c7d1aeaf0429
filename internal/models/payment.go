package models

import "time"

type Payment struct {
	ID          uint   `gorm:"primaryKey"`
	Reference   string `gorm:"size:64;uniqueIndex;not null"`
	InvoiceID   uint   `gorm:"index"`
	ClientID    uint   `gorm:"index"`
	Amount      int64  `gorm:"not null"`
	Currency    string `gorm:"size:10;not null"`
	Status      string `gorm:"size:50;not null"`
	PaymentDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
