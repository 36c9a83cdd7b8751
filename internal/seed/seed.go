package seed

import (
	"context"
	"fmt"
	"io"
	"log"

	"foodbrand-commerce/internal/domain"
	productrepo "foodbrand-commerce/internal/repository/product"
)

// MessageExists is returned when the catalog already has products and the
// seed is skipped.
const MessageExists = "Products already exist"

// MessageSeeded is returned after the demo products were written.
const MessageSeeded = "Seeded products"

type Service struct {
	repo   productrepo.Repository
	logger *log.Logger
}

func New(repo productrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

type Result struct {
	Seeded  bool
	Message string
}

// demoProducts is the fixed demo catalog, written in this order.
func demoProducts() []domain.Product {
	return []domain.Product{
		{
			Title:       "Spicy Chili Chips",
			Description: "Crunchy chips with a fiery chili kick.",
			Price:       3.99,
			Category:    "snacks",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1604908177073-b5c2b6ed83e6?w=800",
			Featured:    true,
		},
		{
			Title:       "Organic Granola",
			Description: "Honey-sweetened granola with nuts and seeds.",
			Price:       6.5,
			Category:    "breakfast",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1517677208171-0bc6725a3e60?w=800",
			Featured:    true,
		},
		{
			Title:       "Tomato Basil Soup",
			Description: "Slow-simmered tomato soup with fresh basil.",
			Price:       4.75,
			Category:    "meals",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800",
			Featured:    false,
		},
		{
			Title:       "Mango Smoothie",
			Description: "Creamy mango smoothie with yogurt.",
			Price:       5.25,
			Category:    "drinks",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1467453678174-768ec283a940?w=800",
			Featured:    false,
		},
	}
}

// Apply seeds the demo catalog if it is empty. The guard makes repeat calls
// no-ops. The four writes are not transactional: a failure partway leaves a
// partial catalog that a later call will see as "already exist" and skip —
// a known limitation, recovered by dropping the products table.
func (s *Service) Apply(ctx context.Context) (Result, error) {
	exists, err := s.repo.Any(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("check existing products: %w", err)
	}
	if exists {
		s.logger.Printf("seed: products already exist, skipping")
		return Result{Seeded: false, Message: MessageExists}, nil
	}

	for _, p := range demoProducts() {
		created, err := s.repo.Create(ctx, p)
		if err != nil {
			return Result{}, fmt.Errorf("seed product %q: %w", p.Title, err)
		}
		s.logger.Printf("seed: created product id=%s title=%q", created.ID, created.Title)
	}
	return Result{Seeded: true, Message: MessageSeeded}, nil
}
