package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kruglovma/sklad/internal/adapters/http/handlers"
	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/dto"
	"github.com/kruglovma/sklad/internal/core/service"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID        int64     `json:"id"`
	Article   string    `json:"article"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Article:   product.Article,
		Name:      product.Name,
		Price:     product.Price.Float(),
		Quantity:  product.Quantity,
		CreatedAt: product.CreatedAt,
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Некорректный ID товара"))
		return 0, false
	}
	return id, true
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product with a unique article
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Router      /products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// ListProducts godoc
// @Summary     List products
// @Description Returns one page of products, newest first, with the total row count
// @Tags        products
// @Produce     json
// @Param       page  query    int false "Page number, starting at 1"
// @Param       limit query    int false "Page size, default 50"
// @Success     200   {object} ProductListResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	products, total, err := pc.productService.List(c.Request.Context(), page, limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	data := make([]ProductResponse, len(products))
	for i, product := range products {
		data[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, ProductListResponse{Data: data, Total: total})
}

// GetProduct godoc
// @Summary     Get a product
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := pc.productService.Get(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Merges the supplied fields onto the stored product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                      true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Fields to change"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Router      /products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Tags        products
// @Param       id path int true "Product ID"
// @Success     204
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.productService.Delete(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
