package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(categoryID, name, slug string, featured bool, order int) *models.Product {
	return &models.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Slug:         slug,
		CategoryID:   categoryID,
		DisplayOrder: order,
		Featured:     featured,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestProductCreatePersistsImagesInOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Luxury Zipper", "luxury-zipper", 1, true)
	product := newProduct(category.ID, `Gold Premium Zipper 10"`, "gold-premium-zipper-10", true, 1)
	product.Specifications = models.SpecMap{"size": "10 inch", "color": "Gold"}
	product.Tags = models.TagList{"luxury", "gold"}

	images := []string{"https://img.test/a.jpg", "https://img.test/b.jpg", "https://img.test/c.jpg"}
	require.NoError(t, repo.Create(ctx, product, images))

	stored, err := repo.GetBySlug(ctx, "gold-premium-zipper-10")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, images, stored.ImageURLs())
	assert.Equal(t, "https://img.test/a.jpg", stored.PrimaryImage())
	assert.Equal(t, models.SpecMap{"size": "10 inch", "color": "Gold"}, stored.Specifications)
	assert.Equal(t, models.TagList{"luxury", "gold"}, stored.Tags)
	require.NotNil(t, stored.Category)
	assert.Equal(t, "Luxury Zipper", stored.Category.Name)
}

func TestProductUpdateReplacesImageList(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	product := newProduct(category.ID, "Heavy Duty", "heavy-duty", false, 1)
	require.NoError(t, repo.Create(ctx, product, []string{"https://img.test/old1.jpg", "https://img.test/old2.jpg"}))

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	stored.Name = "Heavy Duty Metal"
	stored.Category = nil
	stored.Subcategory = nil
	stored.ProductImages = nil
	require.NoError(t, repo.Update(ctx, stored, []string{"https://img.test/new.jpg"}))

	updated, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Heavy Duty Metal", updated.Name)
	assert.Equal(t, []string{"https://img.test/new.jpg"}, updated.ImageURLs())

	// No orphaned rows left behind by the replace.
	var imageRows int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&imageRows).Error)
	assert.Equal(t, int64(1), imageRows)
}

func TestProductUpdateWithNoImagesClearsGallery(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	product := newProduct(category.ID, "Heavy Duty", "heavy-duty", false, 1)
	require.NoError(t, repo.Create(ctx, product, []string{"https://img.test/a.jpg"}))

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	stored.Category = nil
	stored.ProductImages = nil
	require.NoError(t, repo.Update(ctx, stored, nil))

	updated, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.ImageURLs())
	assert.Equal(t, "", updated.PrimaryImage())
}

func TestProductGetFeaturedCapped(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Nylon Coil", "nylon-coil", 1, true)
	for i := 0; i < FeaturedProductLimit+3; i++ {
		product := newProduct(category.ID, fmt.Sprintf("Zipper %d", i), fmt.Sprintf("zipper-%d", i), true, i)
		require.NoError(t, repo.Create(ctx, product, nil))
	}

	featured, err := repo.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, FeaturedProductLimit)

	// Lowest display orders win the capped slots.
	for i, product := range featured {
		assert.Equal(t, i, product.DisplayOrder)
	}
}

func TestProductGetFeaturedExcludesUnfeatured(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Nylon Coil", "nylon-coil", 1, true)
	require.NoError(t, repo.Create(ctx, newProduct(category.ID, "Featured", "featured-zip", true, 1), nil))
	require.NoError(t, repo.Create(ctx, newProduct(category.ID, "Plain", "plain-zip", false, 2), nil))

	featured, err := repo.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "featured-zip", featured[0].Slug)
}

func TestProductGetBySubcategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	subcategory := makeSubcategory(t, db, category.ID, "Brass", "brass", 1)

	inSub := newProduct(category.ID, "Brass Zipper", "brass-zipper", false, 1)
	inSub.SubcategoryID = &subcategory.ID
	require.NoError(t, repo.Create(ctx, inSub, nil))
	require.NoError(t, repo.Create(ctx, newProduct(category.ID, "Loose Zipper", "loose-zipper", false, 2), nil))

	products, err := repo.GetBySubcategory(ctx, subcategory.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "brass-zipper", products[0].Slug)
}

func TestProductDeleteRemovesImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	product := newProduct(category.ID, "Heavy Duty", "heavy-duty", false, 1)
	require.NoError(t, repo.Create(ctx, product, []string{"https://img.test/a.jpg", "https://img.test/b.jpg"}))

	require.NoError(t, repo.Delete(ctx, product.ID))

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	var imageRows int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&imageRows).Error)
	assert.Equal(t, int64(0), imageRows)
}

func TestProductGetBySlugMissingReturnsNilNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	product, err := repo.GetBySlug(context.Background(), "no-such-product")
	assert.NoError(t, err)
	assert.Nil(t, product)
}
