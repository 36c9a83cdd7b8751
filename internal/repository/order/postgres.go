package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"foodbrand-commerce/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Orders live in the "orders" table; the mapping is fixed here, never derived
// from type names.
const ordersTable = "orders"

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO ` + ordersTable + ` (id, customer_name, email, address, city, country, items, subtotal, shipping, total, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING created_at
`
	res := o
	res.ID = uuid.NewString()
	err = r.pool.QueryRow(ctx, q,
		res.ID,
		o.CustomerName,
		o.Email,
		o.Address,
		o.City,
		o.Country,
		items,
		o.Subtotal,
		o.Shipping,
		o.Total,
		o.Status,
	).Scan(&res.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create customer=%q error=%v", o.CustomerName, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s items=%d total=%.2f", res.ID, len(res.Items), res.Total)
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_name, email, address, city, country, items, subtotal, shipping, total, status, created_at
FROM ` + ordersTable + `
WHERE id = $1
`
	var (
		o     domain.Order
		items []byte
	)
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.CustomerName, &o.Email, &o.Address, &o.City, &o.Country, &items, &o.Subtotal, &o.Shipping, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("order repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}
