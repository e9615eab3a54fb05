package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/restshop/commerce-api/internal/api/metrics"
	"github.com/restshop/commerce-api/internal/core/domain"
	"github.com/restshop/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalogue.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		Links:     productLinks{Self: "/products/" + p.ID},
	}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Failure      500  {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listProductsResponse{
		Total:    len(products),
		Products: make([]productResponse, 0, len(products)),
	}
	for i := range products {
		resp.Products = append(resp.Products, toProductResponse(&products[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /products.
//
// @Summary      Add a product to the catalogue
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PATCH /products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /products/:id.
//
// @Summary      Remove a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}
