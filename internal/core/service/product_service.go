package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/restshop/commerce-api/internal/core/domain"
	"github.com/restshop/commerce-api/internal/core/ports"
)

type productService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

// NewProductService returns a ProductService implementation.
func NewProductService(repo ports.ProductRepository, log zerolog.Logger) ports.ProductService {
	return &productService{repo: repo, log: log}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:      input.Name,
		Price:     input.Price,
		ImageURL:  input.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// UpdateProduct applies a partial update; fields left nil in the input are
// not touched.
func (s *productService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}

	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id)
	}
	fields["updated_at"] = time.Now().UTC()

	return s.repo.Update(ctx, id, fields)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
