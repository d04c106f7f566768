package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcategoryGetBySlugResolvesParentFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubcategoryRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	makeSubcategory(t, db, category.ID, "Brass", "brass", 1)

	subcategory, err := repo.GetBySlug(ctx, "metal-zipper", "brass")
	require.NoError(t, err)
	require.NotNil(t, subcategory)
	assert.Equal(t, "Brass", subcategory.Name)
	require.NotNil(t, subcategory.Category)
	assert.Equal(t, "Metal Zipper", subcategory.Category.Name)
}

func TestSubcategoryGetBySlugMissingCategoryShortCircuits(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubcategoryRepository(db)

	// The subcategory slug exists, but under a different category.
	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	makeSubcategory(t, db, category.ID, "Brass", "brass", 1)

	subcategory, err := repo.GetBySlug(context.Background(), "no-such-category", "brass")
	assert.NoError(t, err)
	assert.Nil(t, subcategory)
}

func TestSubcategoryGetBySlugScopedToCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubcategoryRepository(db)
	ctx := context.Background()

	metal := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	nylon := makeCategory(t, db, "Nylon Coil", "nylon-coil", 2, true)
	makeSubcategory(t, db, metal.ID, "Heavy Duty", "heavy-duty", 1)

	// Same slug looked up under the wrong parent must miss.
	subcategory, err := repo.GetBySlug(ctx, nylon.Slug, "heavy-duty")
	assert.NoError(t, err)
	assert.Nil(t, subcategory)

	subcategory, err = repo.GetBySlug(ctx, metal.Slug, "heavy-duty")
	require.NoError(t, err)
	require.NotNil(t, subcategory)
}

func TestSubcategorySlugsUniquePerCategoryOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSubcategoryRepository(db)

	metal := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	nylon := makeCategory(t, db, "Nylon Coil", "nylon-coil", 2, true)

	// The same slug may exist under two different categories.
	makeSubcategory(t, db, metal.ID, "Classic", "classic", 1)
	makeSubcategory(t, db, nylon.ID, "Classic", "classic", 1)

	fromMetal, err := repo.GetBySlug(ctx, "metal-zipper", "classic")
	require.NoError(t, err)
	require.NotNil(t, fromMetal)
	assert.Equal(t, metal.ID, fromMetal.CategoryID)

	fromNylon, err := repo.GetBySlug(ctx, "nylon-coil", "classic")
	require.NoError(t, err)
	require.NotNil(t, fromNylon)
	assert.Equal(t, nylon.ID, fromNylon.CategoryID)
}

func TestSubcategoryGetByCategoryOrdersByDisplayOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubcategoryRepository(db)
	ctx := context.Background()

	category := makeCategory(t, db, "Metal Zipper", "metal-zipper", 1, true)
	makeSubcategory(t, db, category.ID, "Second", "second", 2)
	makeSubcategory(t, db, category.ID, "First", "first", 1)

	subcategories, err := repo.GetByCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, subcategories, 2)
	assert.Equal(t, "first", subcategories[0].Slug)
	assert.Equal(t, "second", subcategories[1].Slug)
}
