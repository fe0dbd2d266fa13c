package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(ProductList{
			Data:  []Product{{ID: 11, Article: "NB-100", Name: "Ноутбук", Price: 10.99, Quantity: 5}},
			Total: 120,
		})
	}))
	defer srv.Close()

	list, err := New(srv.URL).ListProducts(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(120), list.Total)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "NB-100", list.Data[0].Article)
}

func TestClient_CreateProduct(t *testing.T) {
	t.Run("sends payload and decodes the created row", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var input ProductInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "NB-100", *input.Article)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Product{ID: 1, Article: *input.Article})
		}))
		defer srv.Close()

		article := "NB-100"
		product, err := New(srv.URL).CreateProduct(context.Background(), ProductInput{Article: &article})
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
	})

	t.Run("conflict decodes with the article field attached", func(t *testing.T) {
		message := "Товар с артикулом \"NB-100\" уже существует"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": message,
				"errors":  []domain.FieldError{{Field: domain.FieldArticle, Message: message}},
			})
		}))
		defer srv.Close()

		_, err := New(srv.URL).CreateProduct(context.Background(), ProductInput{})
		require.True(t, serviceerrors.IsOfKind(err, serviceerrors.KindConflict))
		fields := serviceerrors.FieldErrors(err)
		require.Len(t, fields, 1)
		assert.Equal(t, domain.FieldArticle, fields[0].Field)
		assert.Equal(t, message, fields[0].Message)
	})

	t.Run("validation message array is joined and fields preserved", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": []string{domain.MsgArticleEmpty, domain.MsgPriceNotPositive},
				"errors": []domain.FieldError{
					{Field: domain.FieldArticle, Message: domain.MsgArticleEmpty},
					{Field: domain.FieldPrice, Message: domain.MsgPriceNotPositive},
				},
			})
		}))
		defer srv.Close()

		_, err := New(srv.URL).CreateProduct(context.Background(), ProductInput{})
		require.True(t, serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest))
		assert.Len(t, serviceerrors.FieldErrors(err), 2)
	})

	t.Run("bare conflict message falls back onto the article field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "артикул занят"})
		}))
		defer srv.Close()

		_, err := New(srv.URL).CreateProduct(context.Background(), ProductInput{})
		fields := serviceerrors.FieldErrors(err)
		require.Len(t, fields, 1)
		assert.Equal(t, domain.FieldArticle, fields[0].Field)
	})
}

func TestClient_GetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Товар с ID 9 не найден"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetProduct(context.Background(), 9)
	require.True(t, serviceerrors.IsOfKind(err, serviceerrors.KindNotFound))
	// a not-found must not be re-attached to any form field
	assert.Empty(t, serviceerrors.FieldErrors(err))
}

func TestClient_DeleteProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).DeleteProduct(context.Background(), 1))
}

func TestProductBrowser(t *testing.T) {
	pages := map[string][]Product{
		"1": {{ID: 3}, {ID: 2}},
		"2": {{ID: 1}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ProductList{Data: pages[r.URL.Query().Get("page")], Total: 3})
	}))
	defer srv.Close()

	browser := NewProductBrowser(New(srv.URL), 2)
	require.NoError(t, browser.Load(context.Background()))
	assert.Equal(t, 1, browser.Page())
	assert.Len(t, browser.Products(), 2)
	assert.Equal(t, int64(3), browser.Total())
	assert.Equal(t, 2, browser.TotalPages())

	require.NoError(t, browser.SetPage(context.Background(), 2))
	require.Len(t, browser.Products(), 1)
	assert.Equal(t, int64(1), browser.Products()[0].ID)
}
