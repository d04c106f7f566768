package models

import (
	"time"
)

type Category struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name          string        `gorm:"size:100;not null"`
	Slug          string        `gorm:"size:100;not null;uniqueIndex"`
	Description   string        `gorm:"type:text"`
	ImageURL      string        `gorm:"size:500"`
	DisplayOrder  int           `gorm:"not null;default:0;index"`
	Featured      bool          `gorm:"not null;default:true"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Products      []Product     `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
