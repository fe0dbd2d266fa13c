package client

import (
	"testing"

	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductForm_Validate(t *testing.T) {
	t.Run("blank form blocks submission with all violations", func(t *testing.T) {
		form := NewProductForm()

		assert.False(t, form.Validate())
		assert.Equal(t, domain.MsgArticleEmpty, form.FieldError(domain.FieldArticle))
		assert.Equal(t, domain.MsgNameEmpty, form.FieldError(domain.FieldName))
		// defaults for price and quantity are valid
		assert.Empty(t, form.FieldError(domain.FieldPrice))
		assert.Empty(t, form.FieldError(domain.FieldQuantity))
	})

	t.Run("non-numeric price uses the coercion message", func(t *testing.T) {
		form := NewProductForm()
		form.SetField(domain.FieldPrice, "дорого")

		assert.False(t, form.ValidateField(domain.FieldPrice))
		assert.Equal(t, domain.MsgPriceNotNumber, form.FieldError(domain.FieldPrice))
	})

	t.Run("editing a field clears its error", func(t *testing.T) {
		form := NewProductForm()
		form.ValidateField(domain.FieldArticle)
		require.NotEmpty(t, form.FieldError(domain.FieldArticle))

		form.SetField(domain.FieldArticle, "NB-100")
		assert.Empty(t, form.FieldError(domain.FieldArticle))
	})
}

func TestProductForm_Input(t *testing.T) {
	t.Run("valid form produces the payload", func(t *testing.T) {
		form := NewProductForm()
		form.SetField(domain.FieldArticle, " NB-100 ")
		form.SetField(domain.FieldName, "Ноутбук")
		form.SetField(domain.FieldPrice, "10.99")
		form.SetField(domain.FieldQuantity, "5")

		input, ok := form.Input()
		require.True(t, ok)
		assert.Equal(t, "NB-100", *input.Article)
		assert.Equal(t, "Ноутбук", *input.Name)
		assert.Equal(t, 10.99, *input.Price)
		assert.Equal(t, float64(5), *input.Quantity)
	})

	t.Run("invalid form refuses to build a payload", func(t *testing.T) {
		form := NewProductForm()
		form.SetField(domain.FieldQuantity, "-3")

		_, ok := form.Input()
		assert.False(t, ok)
		assert.Equal(t, domain.MsgQuantityNegative, form.FieldError(domain.FieldQuantity))
	})
}

func TestProductForm_ApplyServerError(t *testing.T) {
	t.Run("structured field errors land on their fields", func(t *testing.T) {
		form := NewProductForm()
		err := serviceerrors.NewValidationError([]domain.FieldError{
			{Field: domain.FieldArticle, Message: domain.MsgArticleEmpty},
			{Field: domain.FieldPrice, Message: domain.MsgPriceNotPositive},
		})

		require.True(t, form.ApplyServerError(err))
		assert.Equal(t, domain.MsgArticleEmpty, form.FieldError(domain.FieldArticle))
		assert.Equal(t, domain.MsgPriceNotPositive, form.FieldError(domain.FieldPrice))
	})

	t.Run("conflict lands on the article field", func(t *testing.T) {
		form := NewProductForm()
		message := "Товар с артикулом \"NB-100\" уже существует"
		err := serviceerrors.NewFieldConflictError(domain.FieldArticle, message)

		require.True(t, form.ApplyServerError(err))
		assert.Equal(t, message, form.FieldError(domain.FieldArticle))
	})

	t.Run("errors without fields cannot be absorbed", func(t *testing.T) {
		form := NewProductForm()
		assert.False(t, form.ApplyServerError(serviceerrors.NewNotFoundError("Товар с ID 1 не найден")))
	})
}

func TestFormFromProduct(t *testing.T) {
	form := FormFromProduct(&Product{
		Article:  "NB-100",
		Name:     "Ноутбук",
		Price:    10.5,
		Quantity: 3,
	})

	assert.Equal(t, "NB-100", form.Field(domain.FieldArticle))
	assert.Equal(t, "10.50", form.Field(domain.FieldPrice))
	assert.Equal(t, "3", form.Field(domain.FieldQuantity))
	assert.True(t, form.Validate())
}
