package repository

import (
	"context"
	"testing"

	"cuervostore/internal/app/store/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== CartRepository Tests ====================

func TestCartRepository_Get_EmptyWhenMissing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewCartRepository(newTestKV(t))

	// Act
	items := repo.Get(ctx, uuid.New())

	// Assert
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartRepository_CartsAreIsolatedPerOwner(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewCartRepository(newTestKV(t))

	ownerA := uuid.New()
	ownerB := uuid.New()

	itemA := entity.CartItem{ProductID: uuid.New(), Title: "Widget", Price: 10, Qty: 2}
	itemB := entity.CartItem{ProductID: uuid.New(), Title: "Gadget", Price: 5, Qty: 1}

	// Act
	require.NoError(t, repo.Replace(ctx, ownerA, []entity.CartItem{itemA}))
	require.NoError(t, repo.Replace(ctx, ownerB, []entity.CartItem{itemB}))

	// Assert
	cartA := repo.Get(ctx, ownerA)
	cartB := repo.Get(ctx, ownerB)

	require.Len(t, cartA, 1)
	require.Len(t, cartB, 1)
	assert.Equal(t, "Widget", cartA[0].Title)
	assert.Equal(t, "Gadget", cartB[0].Title)
}

func TestCartRepository_Delete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewCartRepository(newTestKV(t))

	owner := uuid.New()
	item := entity.CartItem{ProductID: uuid.New(), Title: "Widget", Price: 10, Qty: 1}
	require.NoError(t, repo.Replace(ctx, owner, []entity.CartItem{item}))

	// Act
	repo.Delete(ctx, owner)

	// Assert
	assert.Empty(t, repo.Get(ctx, owner))
}
