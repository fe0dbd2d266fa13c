package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kruglovma/sklad/internal/adapters/postgres"
	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/port"
)

// querier is satisfied by both the pool and a live transaction, so every
// method transparently joins a transaction carried in the context.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) port.ProductPort {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) querier(ctx context.Context) querier {
	if tx := postgres.TxFrom(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const productColumns = `id, article, name, price::double precision, quantity, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p     domain.Product
		price float64
	)
	if err := row.Scan(&p.ID, &p.Article, &p.Name, &price, &p.Quantity, &p.CreatedAt); err != nil {
		return nil, postgres.MapError(err)
	}
	p.Price = domain.AmountFromFloat(price)
	return &p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	err := r.querier(ctx).QueryRow(ctx,
		`INSERT INTO products (article, name, price, quantity, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		product.Article, product.Name, product.Price.Float(), product.Quantity, product.CreatedAt,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return postgres.MapError(err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.querier(ctx).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// GetByArticle fetches only the row identity; it exists to answer
// "does any row hold this article" without pulling the whole row.
func (r *ProductRepository) GetByArticle(ctx context.Context, article string) (*domain.Product, error) {
	var p domain.Product
	err := r.querier(ctx).QueryRow(ctx,
		`SELECT id, article FROM products WHERE article = $1`, article,
	).Scan(&p.ID, &p.Article)
	if err != nil {
		return nil, postgres.MapError(err)
	}
	return &p, nil
}

// List reads the page and the total count inside one repeatable-read
// snapshot, so the count matches the rows the page was cut from.
func (r *ProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, int64, error) {
	if tx := postgres.TxFrom(ctx); tx != nil {
		return r.list(ctx, tx, offset, limit)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, 0, postgres.MapError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products, total, err := r.list(ctx, tx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, 0, postgres.MapError(err)
	}
	return products, total, nil
}

func (r *ProductRepository) list(ctx context.Context, q querier, offset, limit int) ([]*domain.Product, int64, error) {
	var total int64
	if err := q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err)
	}

	rows, err := q.Query(ctx,
		`SELECT `+productColumns+` FROM products
		 ORDER BY created_at DESC, id DESC
		 OFFSET $1 LIMIT $2`,
		offset, limit)
	if err != nil {
		return nil, 0, postgres.MapError(err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, limit)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err)
	}

	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	tag, err := r.querier(ctx).Exec(ctx,
		`UPDATE products SET article = $1, name = $2, price = $3, quantity = $4 WHERE id = $5`,
		product.Article, product.Name, product.Price.Float(), product.Quantity, product.ID)
	if err != nil {
		return postgres.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier(ctx).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows)
	}
	return nil
}
