package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCreateAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuoteRepository(db)

	quote := &models.QuoteRequest{
		Name:  "Asha Mehta",
		Email: "asha@example.com",
		Phone: "+919876543210",
	}
	require.NoError(t, repo.Create(context.Background(), quote))
	assert.NotEmpty(t, quote.ID)
}

func TestQuoteGetRecentNewestFirstAndLimited(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuoteRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		quote := &models.QuoteRequest{
			ID:        uuid.New().String(),
			Name:      "Customer",
			Email:     "customer@example.com",
			Phone:     "+919876543210",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(quote).Error)
	}

	quotes, err := repo.GetRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.True(t, quotes[0].CreatedAt.After(quotes[1].CreatedAt))
	assert.True(t, quotes[1].CreatedAt.After(quotes[2].CreatedAt))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}
