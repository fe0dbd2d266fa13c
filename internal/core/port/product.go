package port

import (
	"context"

	"github.com/kruglovma/sklad/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	// Insert stores a new row and assigns ID and CreatedAt on the product.
	Insert(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// GetByArticle is an existence probe; it fetches a minimal projection
	// and returns a not-found error when no row holds the article.
	GetByArticle(ctx context.Context, article string) (*domain.Product, error)
	// List returns one page ordered by creation time descending, together
	// with the total row count observed in the same snapshot.
	List(ctx context.Context, offset, limit int) ([]*domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}
