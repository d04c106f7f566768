package repositories

import (
	"context"

	"github.com/devanshpatil/zipcatalog/app/models"
	"gorm.io/gorm"
)

type SubcategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Subcategory, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error)
	// GetBySlug resolves the parent category slug first; when that misses,
	// the subcategory lookup is never attempted and (nil, nil) is returned.
	GetBySlug(ctx context.Context, categorySlug, subcategorySlug string) (*models.Subcategory, error)
	GetByID(ctx context.Context, id string) (*models.Subcategory, error)
	Create(ctx context.Context, subcategory *models.Subcategory) error
	Update(ctx context.Context, subcategory *models.Subcategory) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type subcategoryRepository struct {
	db           *gorm.DB
	categoryRepo CategoryRepositoryImpl
}

func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepositoryImpl {
	return &subcategoryRepository{db: db, categoryRepo: NewCategoryRepository(db)}
}

func (r *subcategoryRepository) GetAll(ctx context.Context) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("display_order ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("display_order ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *subcategoryRepository) GetBySlug(ctx context.Context, categorySlug, subcategorySlug string) (*models.Subcategory, error) {
	category, err := r.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	var subcategory models.Subcategory
	err = r.db.WithContext(ctx).
		Where("category_id = ? AND slug = ?", category.ID, subcategorySlug).
		First(&subcategory).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	subcategory.Category = category
	return &subcategory, nil
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").First(&subcategory, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *models.Subcategory) error {
	return r.db.WithContext(ctx).Save(subcategory).Error
}

func (r *subcategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Subcategory{}, "id = ?", id).Error
}

func (r *subcategoryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Subcategory{}).Count(&total).Error
	return total, err
}
