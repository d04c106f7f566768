package repositories

import (
	"testing"
	"time"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/devanshpatil/zipcatalog/app/models/migrations"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func makeCategory(t *testing.T, db *gorm.DB, name, slug string, order int, featured bool) *models.Category {
	t.Helper()

	category := &models.Category{
		ID:           uuid.New().String(),
		Name:         name,
		Slug:         slug,
		DisplayOrder: order,
		Featured:     featured,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func makeSubcategory(t *testing.T, db *gorm.DB, categoryID, name, slug string, order int) *models.Subcategory {
	t.Helper()

	subcategory := &models.Subcategory{
		ID:           uuid.New().String(),
		CategoryID:   categoryID,
		Name:         name,
		Slug:         slug,
		DisplayOrder: order,
		Featured:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, db.Create(subcategory).Error)
	return subcategory
}
