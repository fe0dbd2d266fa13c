package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/dto"
	"github.com/kruglovma/sklad/internal/core/logger"
	"github.com/kruglovma/sklad/internal/core/port"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 500
)

type ProductService struct {
	productRepository port.ProductPort
	txManager         port.TransactionManager
}

func NewProductService(productRepository port.ProductPort, txManager port.TransactionManager) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		txManager:         txManager,
	}
}

func articleConflict(article string) *serviceerrors.ServiceError {
	message := fmt.Sprintf("Товар с артикулом \"%s\" уже существует", article)
	return serviceerrors.NewFieldConflictError(domain.FieldArticle, message)
}

func productNotFound(id int64) *serviceerrors.ServiceError {
	return serviceerrors.NewNotFoundError(fmt.Sprintf("Товар с ID %d не найден", id))
}

func (s *ProductService) Create(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	if violations := domain.ValidateCreate(request.Input()); len(violations) > 0 {
		return nil, serviceerrors.NewValidationError(violations)
	}

	article := strings.TrimSpace(*request.Article)

	// Fast existence probe. The unique constraint remains the ultimate
	// guard against two concurrent creates passing this check.
	if _, err := s.productRepository.GetByArticle(ctx, article); err == nil {
		return nil, articleConflict(article)
	} else if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		return nil, err
	}

	quantity := 0
	if request.Quantity != nil {
		quantity = int(*request.Quantity)
	}
	product := domain.NewProduct(article, *request.Name, domain.AmountFromFloat(*request.Price), quantity)

	if err := s.productRepository.Insert(ctx, product); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			return nil, articleConflict(article)
		}
		logger.Error(ctx, "product: insert failed", err, map[string]any{
			"article": article,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{
		"product_id": product.ID,
		"article":    product.Article,
	})
	return product, nil
}

// List returns one page of products, newest first, plus the total row
// count. Out-of-range paging input falls back to the defaults; a page
// past the end yields an empty slice, not an error.
func (s *ProductService) List(ctx context.Context, page, limit int) ([]*domain.Product, int64, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	return s.productRepository.List(ctx, offset, limit)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, productNotFound(id)
		}
		return nil, err
	}
	return product, nil
}

// Update merges the supplied fields onto the current row. The fetch,
// the article uniqueness re-check and the write run in one serializable
// transaction so concurrent updates cannot both claim the same article.
func (s *ProductService) Update(ctx context.Context, id int64, request *dto.UpdateProductRequest) (*domain.Product, error) {
	if violations := domain.ValidateUpdate(request.Input()); len(violations) > 0 {
		return nil, serviceerrors.NewValidationError(violations)
	}

	var updated *domain.Product
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := s.productRepository.GetByID(ctx, id)
		if err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
				return productNotFound(id)
			}
			return err
		}

		if request.Article != nil {
			article := strings.TrimSpace(*request.Article)
			if article != current.Article {
				if _, err := s.productRepository.GetByArticle(ctx, article); err == nil {
					return articleConflict(article)
				} else if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
					return err
				}
			}
			current.Article = article
		}
		if request.Name != nil {
			current.Name = strings.TrimSpace(*request.Name)
		}
		if request.Price != nil {
			current.Price = domain.AmountFromFloat(*request.Price)
		}
		if request.Quantity != nil {
			current.Quantity = int(*request.Quantity)
		}

		if err := s.productRepository.Update(ctx, current); err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
				return articleConflict(current.Article)
			}
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			// Also covers serialization failures from a losing writer.
			return nil, err
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "product: update failed", err, map[string]any{
				"product_id": id,
			})
		}
		return nil, err
	}

	logger.Info(ctx, "Product updated", map[string]any{
		"product_id": updated.ID,
		"article":    updated.Article,
	})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return productNotFound(id)
		}
		logger.Error(ctx, "product: delete failed", err, map[string]any{
			"product_id": id,
		})
		return err
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}
