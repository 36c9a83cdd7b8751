package domain

import (
	"errors"
	"strings"
	"time"
)

type Product struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	Image       string    `json:"image,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Validate checks catalog invariants. The store-assigned ID is identity,
// not part of the validated shape, so it is not checked here.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title required")
	}
	if p.Price < 0 {
		return errors.New("price must be non-negative")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("category required")
	}
	return nil
}
