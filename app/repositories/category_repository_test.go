package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGetAllFiltersUnfeatured(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	makeCategory(t, db, "Metal Zipper", "metal-zipper", 2, true)
	makeCategory(t, db, "Luxury Zipper", "luxury-zipper", 1, true)
	makeCategory(t, db, "Discontinued", "discontinued", 0, false)

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "luxury-zipper", categories[0].Slug)
	assert.Equal(t, "metal-zipper", categories[1].Slug)
}

func TestCategoryGetAllAdminIncludesUnfeatured(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	makeCategory(t, db, "Luxury Zipper", "luxury-zipper", 1, true)
	makeCategory(t, db, "Discontinued", "discontinued", 0, false)

	categories, err := repo.GetAllAdmin(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryUnfeaturedStillReachableBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	makeCategory(t, db, "Discontinued", "discontinued", 0, false)

	category, err := repo.GetBySlug(ctx, "discontinued")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Discontinued", category.Name)
	assert.False(t, category.Featured)
}

func TestCategoryGetBySlugMissingReturnsNilNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	category, err := repo.GetBySlug(context.Background(), "does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, category)
}

func TestCategoryUpdateAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Luxury Zipper", "luxury-zipper", 1, true)

	category.Featured = false
	category.DisplayOrder = 9
	require.NoError(t, repo.Update(ctx, category))

	stored, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Featured)
	assert.Equal(t, 9, stored.DisplayOrder)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCategoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Luxury Zipper", "luxury-zipper", 1, true)
	require.NoError(t, repo.Delete(ctx, category.ID))

	stored, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
