package product

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"foodbrand-commerce/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Products live in the "products" table; the mapping is fixed here, never
// derived from type names.
const productsTable = "products"

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

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	var (
		clauses []string
		args    []interface{}
	)
	if f.Category != nil {
		args = append(args, *f.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		clauses = append(clauses, fmt.Sprintf("featured = $%d", len(args)))
	}

	q := `SELECT id::text, title, COALESCE(description, ''), price, category, in_stock, COALESCE(image, ''), featured, created_at FROM ` + productsTable
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Category, &p.InStock, &p.Image, &p.Featured, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO ` + productsTable + ` (title, description, price, category, in_stock, image, featured)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), $7)
RETURNING id::text, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q, p.Title, p.Description, p.Price, p.Category, p.InStock, p.Image, p.Featured).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s title=%q", res.ID, res.Title)
	return &res, nil
}

func (r *postgresRepo) Any(ctx context.Context) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM ` + productsTable + `)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q).Scan(&exists); err != nil {
		r.logger.Printf("product repo: any error=%v", err)
		return false, err
	}
	return exists, nil
}
