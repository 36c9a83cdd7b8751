package domain

import "testing"

func validOrder() Order {
	return Order{
		CustomerName: "Ada Lovelace",
		Email:        "ada@example.com",
		Address:      "1 Analytical Way",
		City:         "London",
		Country:      "UK",
		Items: []OrderItem{
			{ProductID: "p1", Title: "Spicy Chili Chips", Price: 3.99, Quantity: 2},
		},
		Subtotal: 7.98,
		Shipping: 0,
		Total:    7.98,
		Status:   OrderStatusPending,
	}
}

func TestOrderValidate_OK(t *testing.T) {
	if err := validOrder().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Order)
	}{
		{"missing customer name", func(o *Order) { o.CustomerName = " " }},
		{"missing email", func(o *Order) { o.Email = "" }},
		{"malformed email", func(o *Order) { o.Email = "not-an-email" }},
		{"missing address", func(o *Order) { o.Address = "" }},
		{"missing city", func(o *Order) { o.City = "" }},
		{"missing country", func(o *Order) { o.Country = "" }},
		{"empty items", func(o *Order) { o.Items = nil }},
		{"zero quantity item", func(o *Order) { o.Items[0].Quantity = 0 }},
		{"negative price item", func(o *Order) { o.Items[0].Price = -1 }},
		{"item missing product id", func(o *Order) { o.Items[0].ProductID = "" }},
		{"negative subtotal", func(o *Order) { o.Subtotal = -0.01 }},
		{"negative shipping", func(o *Order) { o.Shipping = -1 }},
		{"negative total", func(o *Order) { o.Total = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := validOrder()
			tc.mutate(&o)
			if err := o.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestProductValidate(t *testing.T) {
	p := Product{Title: "Organic Granola", Price: 6.5, Category: "breakfast", InStock: true}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Price = -0.01
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for negative price")
	}

	p = Product{Title: "", Price: 1, Category: "snacks"}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for missing title")
	}

	p = Product{Title: "Chips", Price: 1, Category: ""}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for missing category")
	}
}
