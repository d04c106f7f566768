package repositories

import (
	"context"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteRepositoryImpl interface {
	Create(ctx context.Context, quote *models.QuoteRequest) error
	GetRecent(ctx context.Context, limit int) ([]models.QuoteRequest, error)
	Count(ctx context.Context) (int64, error)
}

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepositoryImpl {
	return &quoteRepository{db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *models.QuoteRequest) error {
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetRecent(ctx context.Context, limit int) ([]models.QuoteRequest, error) {
	var quotes []models.QuoteRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *quoteRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.QuoteRequest{}).Count(&total).Error
	return total, err
}
