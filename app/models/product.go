package models

import (
	"time"
)

type Product struct {
	ID             string         `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name           string         `gorm:"size:255;not null"`
	Slug           string         `gorm:"size:255;not null;uniqueIndex"`
	CategoryID     string         `gorm:"size:36;not null;index"`
	SubcategoryID  *string        `gorm:"size:36;index"`
	Description    string         `gorm:"type:text"`
	Specifications SpecMap        `gorm:"type:json"`
	Tags           TagList        `gorm:"type:json"`
	DisplayOrder   int            `gorm:"not null;default:0;index"`
	Featured       bool           `gorm:"not null;default:false"`
	Category       *Category      `gorm:"foreignKey:CategoryID"`
	Subcategory    *Subcategory   `gorm:"foreignKey:SubcategoryID"`
	ProductImages  []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ImageURLs flattens the image rows into their URLs, in stored order.
// Repositories guarantee ProductImages is sorted ascending by DisplayOrder,
// so index 0 is the primary listing image.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.ProductImages))
	for _, img := range p.ProductImages {
		urls = append(urls, img.ImageURL)
	}
	return urls
}

// PrimaryImage returns the image shown on listing cards, or "" when the
// product has no images yet.
func (p *Product) PrimaryImage() string {
	if len(p.ProductImages) == 0 {
		return ""
	}
	return p.ProductImages[0].ImageURL
}
