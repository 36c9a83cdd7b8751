package product

import (
	"context"

	"foodbrand-commerce/internal/domain"
)

// Filter selects products by field equality. Nil pointer means "clause
// absent"; a present false Featured still filters.
type Filter struct {
	Category *string
	Featured *bool
	Limit    int
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Any(ctx context.Context) (bool, error)
}
