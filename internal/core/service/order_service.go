package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/restshop/commerce-api/internal/core/domain"
	"github.com/restshop/commerce-api/internal/core/ports"
)

// IdempotencyChecker abstracts the replay-detection store (Redis).
type IdempotencyChecker interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type orderService struct {
	orders      ports.OrderRepository
	products    ports.ProductRepository
	idempotency IdempotencyChecker
	log         zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	idempotency IdempotencyChecker,
	log zerolog.Logger,
) ports.OrderService {
	return &orderService{
		orders:      orders,
		products:    products,
		idempotency: idempotency,
		log:         log,
	}
}

// PlaceOrder creates an order after confirming the product exists. When an
// idempotency key is provided and already seen, the previously created order
// is returned without side effects.
func (s *orderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*ports.OrderDetail, error) {
	if input.IdempotencyKey != "" {
		seen, err := s.idempotency.Seen(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency check failed, processing anyway")
		} else if seen {
			existing, err := s.orders.FindByIdempotencyKey(ctx, input.IdempotencyKey)
			if err == nil && existing != nil {
				s.log.Info().Str("idempotency_key", input.IdempotencyKey).Str("order_id", existing.ID).Msg("idempotent replay")
				detail, err := s.toDetail(ctx, existing)
				if err != nil {
					return nil, err
				}
				detail.AlreadyExisted = true
				return detail, nil
			}
		}
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	order := &domain.Order{
		ProductID:      product.ID,
		Quantity:       quantity,
		CreatedAt:      time.Now().UTC(),
		IdempotencyKey: input.IdempotencyKey,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	if input.IdempotencyKey != "" {
		if err := s.idempotency.Mark(ctx, input.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to set idempotency key")
		}
	}

	s.log.Info().Str("order_id", created.ID).Str("product_id", product.ID).Int("quantity", quantity).Msg("order placed")

	return &ports.OrderDetail{
		ID:        created.ID,
		Quantity:  created.Quantity,
		CreatedAt: created.CreatedAt,
		Product: ports.OrderProduct{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		},
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]ports.OrderDetail, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.OrderDetail, 0, len(orders))
	for i := range orders {
		detail, err := s.toDetail(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*ports.OrderDetail, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, order)
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orders.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

// toDetail joins an order with its product. A product deleted after the
// order was placed is reported with its id only.
func (s *orderService) toDetail(ctx context.Context, order *domain.Order) (*ports.OrderDetail, error) {
	detail := &ports.OrderDetail{
		ID:        order.ID,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
		Product:   ports.OrderProduct{ID: order.ProductID},
	}

	product, err := s.products.FindByID(ctx, order.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return detail, nil
		}
		return nil, err
	}

	detail.Product.Name = product.Name
	detail.Product.Price = product.Price
	return detail, nil
}
