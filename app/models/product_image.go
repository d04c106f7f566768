package models

import (
	"time"
)

// ProductImage is one row of a product's ordered gallery.
type ProductImage struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID    string `gorm:"size:36;not null;index"`
	ImageURL     string `gorm:"size:500;not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
