package catalog

import (
	"context"
	"fmt"

	"foodbrand-commerce/internal/domain"
	productrepo "foodbrand-commerce/internal/repository/product"
)

// DefaultLimit caps product listings when the caller does not ask for one.
const DefaultLimit = 50

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type ListInput struct {
	Category *string
	Featured *bool
	Limit    int
}

// List returns catalog products matching the filter. Every record coming back
// from the store must validate; a single bad record fails the whole call
// rather than returning partial results.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Product, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	products, err := s.repo.List(ctx, productrepo.Filter{
		Category: in.Category,
		Featured: in.Featured,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product record %s: %w", p.ID, err)
		}
	}
	return products, nil
}
