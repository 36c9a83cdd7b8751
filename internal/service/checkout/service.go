package checkout

import (
	"context"

	"foodbrand-commerce/internal/domain"
	orderrepo "foodbrand-commerce/internal/repository/order"
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CartItem is the client's snapshot of a catalog product. Prices are taken
// as-is and not re-read from the catalog, so the snapshot a customer saw is
// the one they are charged for. That trust boundary is deliberate here.
type CartItem struct {
	ProductID string
	Title     string
	Price     float64
	Quantity  int
	Image     string
}

type Input struct {
	CustomerName string
	Email        string
	Address      string
	City         string
	Country      string
	Items        []CartItem
}

// Checkout builds an order from the cart snapshot and persists it as a single
// row. Subtotal is the sum of price*quantity over items in input order,
// shipping is fixed at zero, so total equals subtotal. Any validation or
// store failure aborts the whole operation; nothing is ever partially
// persisted.
func (s *Service) Checkout(ctx context.Context, in Input) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(in.Items))
	subtotal := 0.0
	for _, it := range in.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
		subtotal += it.Price * float64(it.Quantity)
	}

	order := domain.Order{
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		Items:        items,
		Subtotal:     subtotal,
		Shipping:     0,
		Total:        subtotal,
		Status:       domain.OrderStatusPending,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, order)
}
