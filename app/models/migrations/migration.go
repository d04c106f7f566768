package migrations

import (
	"github.com/devanshpatil/zipcatalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.ProductImage{},
		&models.QuoteRequest{},
	)
}
