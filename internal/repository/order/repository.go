package order

import (
	"context"

	"foodbrand-commerce/internal/domain"
)

type Repository interface {
	// Create persists the order as a single row and returns it with the
	// store-assigned id set. One row per order, so the write is atomic.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
