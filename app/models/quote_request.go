package models

import (
	"time"
)

// QuoteRequest is a submission from the public contact form.
type QuoteRequest struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string `gorm:"size:100;not null"`
	CompanyName string `gorm:"size:150"`
	Email       string `gorm:"size:100;not null"`
	Phone       string `gorm:"size:20;not null"`
	Message     string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
