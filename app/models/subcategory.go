package models

import (
	"time"
)

// Subcategory always belongs to exactly one category. Slugs are unique
// within the owning category, not globally.
type Subcategory struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID   string    `gorm:"size:36;not null;index;uniqueIndex:idx_subcategory_slug"`
	Name         string    `gorm:"size:100;not null"`
	Slug         string    `gorm:"size:100;not null;uniqueIndex:idx_subcategory_slug"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"size:500"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	Featured     bool      `gorm:"not null;default:true"`
	Category     *Category `gorm:"foreignKey:CategoryID"`
	Products     []Product `gorm:"foreignKey:SubcategoryID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
