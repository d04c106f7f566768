package repositories

import (
	"context"
	"testing"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the path an admin and a visitor take together: build a category
// tree through the repositories, then read it back the way the public
// pages do.
func TestCatalogEndToEnd(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	categoryRepo := NewCategoryRepository(db)
	subcategoryRepo := NewSubcategoryRepository(db)
	productRepo := NewProductRepository(db)

	category := &models.Category{
		ID:           uuid.New().String(),
		Name:         "Luxury Zipper",
		Slug:         helpers.GenerateSlug("Luxury Zipper"),
		DisplayOrder: 1,
		Featured:     true,
	}
	require.NoError(t, categoryRepo.Create(ctx, category))

	subcategory := &models.Subcategory{
		ID:           uuid.New().String(),
		CategoryID:   category.ID,
		Name:         "Gold Series",
		Slug:         helpers.GenerateSlug("Gold Series"),
		DisplayOrder: 1,
		Featured:     true,
	}
	require.NoError(t, subcategoryRepo.Create(ctx, subcategory))

	product := &models.Product{
		ID:             uuid.New().String(),
		Name:           `Gold Premium Zipper 10"`,
		Slug:           helpers.GenerateSlug(`Gold Premium Zipper 10"`),
		CategoryID:     category.ID,
		SubcategoryID:  &subcategory.ID,
		Specifications: models.SpecMap{"size": "10 inch", "color": "Gold"},
		Tags:           models.TagList{"luxury", "gold"},
		DisplayOrder:   1,
		Featured:       true,
	}
	images := []string{"https://img.test/front.jpg", "https://img.test/back.jpg"}
	require.NoError(t, productRepo.Create(ctx, product, images))

	// Home page: featured categories and featured products.
	featuredCategories, err := categoryRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, featuredCategories, 1)

	featuredProducts, err := productRepo.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featuredProducts, 1)
	assert.Equal(t, "https://img.test/front.jpg", featuredProducts[0].PrimaryImage())

	// Category page via slug.
	storedCategory, err := categoryRepo.GetBySlug(ctx, "luxury-zipper")
	require.NoError(t, err)
	require.NotNil(t, storedCategory)

	subcategories, err := subcategoryRepo.GetByCategory(ctx, storedCategory.ID)
	require.NoError(t, err)
	require.Len(t, subcategories, 1)

	// Subcategory page via the nested slug pair.
	storedSubcategory, err := subcategoryRepo.GetBySlug(ctx, "luxury-zipper", "gold-series")
	require.NoError(t, err)
	require.NotNil(t, storedSubcategory)

	inSubcategory, err := productRepo.GetBySubcategory(ctx, storedSubcategory.ID)
	require.NoError(t, err)
	require.Len(t, inSubcategory, 1)

	// Product page with the gallery in saved order.
	storedProduct, err := productRepo.GetBySlug(ctx, "gold-premium-zipper-10")
	require.NoError(t, err)
	require.NotNil(t, storedProduct)
	assert.Equal(t, images, storedProduct.ImageURLs())
	assert.Equal(t, models.SpecMap{"size": "10 inch", "color": "Gold"}, storedProduct.Specifications)
}
