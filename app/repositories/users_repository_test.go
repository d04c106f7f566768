package repositories

import (
	"context"
	"testing"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateHashesPasswordAndDefaultsRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "staff@example.com", Password: "plain-pass"}
	require.NoError(t, repo.Create(ctx, user))

	stored, err := repo.FindByEmail(ctx, "staff@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, models.RoleStaff, stored.Role)
	assert.NotEqual(t, "plain-pass", stored.Password)
	assert.True(t, helpers.PasswordCompare(stored.Password, []byte("plain-pass")))
}

func TestUserFindMissingReturnsNilNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	byEmail, err := repo.FindByEmail(ctx, "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := repo.FindByID(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, byID)
}
