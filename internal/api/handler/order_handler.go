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

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func toOrderResponse(d *ports.OrderDetail) orderResponse {
	return orderResponse{
		ID: d.ID,
		Product: orderProductResponse{
			ID:    d.Product.ID,
			Name:  d.Product.Name,
			Price: d.Product.Price,
		},
		Quantity:  d.Quantity,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		Links: orderLinks{
			Self:    "/orders/" + d.ID,
			Product: "/products/" + d.Product.ID,
		},
	}
}

// List handles GET /orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  listOrdersResponse
// @Failure      500  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listOrdersResponse{
		Total:  len(orders),
		Orders: make([]orderResponse, 0, len(orders)),
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Place handles POST /orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string            false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      placeOrderRequest  true  "Order details"
// @Success      200              {object}  orderResponse  "replayed via Idempotency-Key"
// @Success      201              {object}  orderResponse
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	order, err := h.service.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return err
	}

	if order.AlreadyExisted {
		metrics.OrderIdempotencyTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, toOrderResponse(order))
	}
	if idempotencyKey != "" {
		metrics.OrderIdempotencyTotal.WithLabelValues("miss").Inc()
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Delete handles DELETE /orders/:id.
//
// @Summary      Remove an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order deleted"})
}
