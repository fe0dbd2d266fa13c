package client

import (
	"strconv"
	"strings"

	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
)

// ProductForm holds raw string input and evaluates the same rule set the
// server applies, so a bad value is reported before anything is sent.
type ProductForm struct {
	values map[string]string
	errors map[string]string
}

func NewProductForm() *ProductForm {
	return &ProductForm{
		values: map[string]string{
			domain.FieldArticle:  "",
			domain.FieldName:     "",
			domain.FieldPrice:    "1",
			domain.FieldQuantity: "0",
		},
		errors: map[string]string{},
	}
}

// FormFromProduct pre-fills the form for editing an existing row.
func FormFromProduct(p *Product) *ProductForm {
	form := NewProductForm()
	form.values[domain.FieldArticle] = p.Article
	form.values[domain.FieldName] = p.Name
	form.values[domain.FieldPrice] = strconv.FormatFloat(p.Price, 'f', 2, 64)
	form.values[domain.FieldQuantity] = strconv.Itoa(p.Quantity)
	return form
}

// SetField updates a value and clears its stale error, mirroring the
// as-you-type behavior of the form this replaces.
func (f *ProductForm) SetField(field, value string) {
	f.values[field] = value
	delete(f.errors, field)
}

func (f *ProductForm) Field(field string) string {
	return f.values[field]
}

func (f *ProductForm) FieldError(field string) string {
	return f.errors[field]
}

func (f *ProductForm) Errors() map[string]string {
	return f.errors
}

// ValidateField checks one field, as on blur.
func (f *ProductForm) ValidateField(field string) bool {
	if fe := f.checkField(field); fe != nil {
		f.errors[field] = fe.Message
		return false
	}
	delete(f.errors, field)
	return true
}

// Validate checks every field and reports whether submission may
// proceed. All violations are recorded, not just the first.
func (f *ProductForm) Validate() bool {
	for _, field := range []string{domain.FieldArticle, domain.FieldName, domain.FieldPrice, domain.FieldQuantity} {
		f.ValidateField(field)
	}
	return len(f.errors) == 0
}

func (f *ProductForm) checkField(field string) *domain.FieldError {
	switch field {
	case domain.FieldArticle:
		return domain.ValidateArticle(f.values[field])
	case domain.FieldName:
		return domain.ValidateName(f.values[field])
	case domain.FieldPrice:
		_, fe := domain.ParsePrice(f.values[field])
		return fe
	case domain.FieldQuantity:
		_, fe := domain.ParseQuantity(f.values[field])
		return fe
	default:
		return nil
	}
}

// Input converts the validated form into a request payload. It returns
// false when validation blocks submission.
func (f *ProductForm) Input() (ProductInput, bool) {
	if !f.Validate() {
		return ProductInput{}, false
	}

	article := strings.TrimSpace(f.values[domain.FieldArticle])
	name := strings.TrimSpace(f.values[domain.FieldName])
	amount, _ := domain.ParsePrice(f.values[domain.FieldPrice])
	price := amount.Float()
	qty, _ := domain.ParseQuantity(f.values[domain.FieldQuantity])
	quantity := float64(qty)

	return ProductInput{
		Article:  &article,
		Name:     &name,
		Price:    &price,
		Quantity: &quantity,
	}, true
}

// ApplyServerError re-attaches a rejected submission to the fields the
// server named. It reports false for errors no form field can absorb.
func (f *ProductForm) ApplyServerError(err error) bool {
	fields := serviceerrors.FieldErrors(err)
	if len(fields) == 0 {
		return false
	}
	for _, fe := range fields {
		if _, known := f.values[fe.Field]; known {
			f.errors[fe.Field] = fe.Message
		}
	}
	return len(f.errors) > 0
}
