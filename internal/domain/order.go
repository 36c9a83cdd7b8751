package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
)

var fieldCheck = validatorv10.New()

// OrderStatusPending is the initial status of every order. The status set is
// open: fulfilment tooling may move orders to other labels later, this core
// never does.
const OrderStatusPending = "pending"

// OrderItem is a point-in-time snapshot of a catalog product at checkout.
// Title, price and image are copied, not re-read from the catalog, so later
// catalog edits do not rewrite history.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

func (it OrderItem) Validate() error {
	if strings.TrimSpace(it.ProductID) == "" {
		return errors.New("product_id required")
	}
	if strings.TrimSpace(it.Title) == "" {
		return errors.New("title required")
	}
	if it.Price < 0 {
		return errors.New("price must be non-negative")
	}
	if it.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}

// Order is immutable once created: no update or cancel operation exists.
type Order struct {
	ID           string      `json:"id,omitempty"`
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Country      string      `json:"country"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Shipping     float64     `json:"shipping"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at,omitempty"`
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return errors.New("customer_name required")
	}
	if strings.TrimSpace(o.Email) == "" {
		return errors.New("email required")
	}
	if err := fieldCheck.Var(o.Email, "email"); err != nil {
		return errors.New("email must be a valid email address")
	}
	if strings.TrimSpace(o.Address) == "" {
		return errors.New("address required")
	}
	if strings.TrimSpace(o.City) == "" {
		return errors.New("city required")
	}
	if strings.TrimSpace(o.Country) == "" {
		return errors.New("country required")
	}
	if len(o.Items) == 0 {
		return errors.New("items must not be empty")
	}
	for i, it := range o.Items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	if o.Subtotal < 0 {
		return errors.New("subtotal must be non-negative")
	}
	if o.Shipping < 0 {
		return errors.New("shipping must be non-negative")
	}
	if o.Total < 0 {
		return errors.New("total must be non-negative")
	}
	return nil
}
