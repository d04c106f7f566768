package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeaturedProductLimit caps the homepage featured strip.
const FeaturedProductLimit = 6

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	GetBySubcategory(ctx context.Context, subcategoryID string) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	// Create and Update write the product row and replace its image list in
	// one transaction: an image failure rolls the whole save back.
	Create(ctx context.Context, product *models.Product, imageURLs []string) error
	Update(ctx context.Context, product *models.Product, imageURLs []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Preload("Category").
		Order("display_order ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	sortImages(products)
	return products, nil
}

func (p *productRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Where("category_id = ?", categoryID).
		Order("display_order ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	sortImages(products)
	return products, nil
}

func (p *productRepository) GetBySubcategory(ctx context.Context, subcategoryID string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Where("subcategory_id = ?", subcategoryID).
		Order("display_order ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	sortImages(products)
	return products, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Preload("Category").
		Preload("Subcategory").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	sortProductImages(&product)
	return &product, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Preload("Category").
		Preload("Subcategory").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	sortProductImages(&product)
	return &product, nil
}

func (p *productRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("ProductImages").
		Where("featured = ?", true).
		Order("display_order ASC").
		Limit(FeaturedProductLimit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	sortImages(products)
	return products, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product, imageURLs []string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ProductImages").Create(product).Error; err != nil {
			return err
		}
		return replaceImages(tx, product.ID, imageURLs)
	})
}

func (p *productRepository) Update(ctx context.Context, product *models.Product, imageURLs []string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ProductImages").Save(product).Error; err != nil {
			return err
		}
		return replaceImages(tx, product.ID, imageURLs)
	})
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	return total, err
}

// replaceImages swaps a product's gallery wholesale: delete every existing
// row, then insert the new list with display_order equal to list position.
func replaceImages(tx *gorm.DB, productID string, imageURLs []string) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if len(imageURLs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.ProductImage, 0, len(imageURLs))
	for i, url := range imageURLs {
		rows = append(rows, models.ProductImage{
			ID:           uuid.New().String(),
			ProductID:    productID,
			ImageURL:     url,
			DisplayOrder: i,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return tx.Create(&rows).Error
}

// sortProductImages orders the gallery ascending by display_order even if
// the database returned the join rows in another order.
func sortProductImages(product *models.Product) {
	sort.SliceStable(product.ProductImages, func(i, j int) bool {
		return product.ProductImages[i].DisplayOrder < product.ProductImages[j].DisplayOrder
	})
}

func sortImages(products []models.Product) {
	for i := range products {
		sortProductImages(&products[i])
	}
}
