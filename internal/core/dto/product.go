package dto

import "github.com/kruglovma/sklad/internal/core/domain"

// CreateProductRequest carries every field as a pointer so the rule set
// can tell "absent" apart from "zero value". Quantity stays a float until
// validated, matching the integer rule instead of failing the JSON bind.
type CreateProductRequest struct {
	Article  *string  `json:"article"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
}

func (r *CreateProductRequest) Input() domain.ProductInput {
	return domain.ProductInput{
		Article:  r.Article,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}

// UpdateProductRequest is a partial payload: nil fields are left unchanged.
type UpdateProductRequest struct {
	Article  *string  `json:"article"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
}

func (r *UpdateProductRequest) Input() domain.ProductInput {
	return domain.ProductInput{
		Article:  r.Article,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}
