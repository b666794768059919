package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// priceBookService implements the PriceBookSvcFacade interface.
type priceBookService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewPriceBookService creates the price-book service.
func NewPriceBookService(repo portsrepo.ProductRepositoryFacade) portssvc.PriceBookSvcFacade {
	return &priceBookService{productRepo: repo}
}

// Ensure priceBookService implements the PriceBookSvcFacade interface
var _ portssvc.PriceBookSvcFacade = (*priceBookService)(nil)

// ListPrices returns the price book, seeding the default catalog first when
// the store is empty so a fresh install always has prices to sell against.
func (s *priceBookService) ListPrices(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	s.LogInfo(ctx, "Price book empty, seeding default catalog")
	for _, p := range domain.DefaultCatalog() {
		if err := s.productRepo.SaveProduct(ctx, p); err != nil {
			s.LogError(ctx, err, "Failed to seed default product", slog.String("product", p.Name))
			return nil, fmt.Errorf("failed to seed default catalog: %w", err)
		}
	}
	return s.productRepo.ListProducts(ctx)
}

func (s *priceBookService) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}

	product := domain.Product{Name: name, Price: domain.CoerceAmount(price)}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to set price", slog.String("product", name))
		return err
	}
	s.LogInfo(ctx, "Price updated", slog.String("product", name), slog.String("price", product.Price.String()))
	return nil
}

// SetPrices applies a bulk price edit. Each entry is an independent upsert;
// the first failure aborts the remainder.
func (s *priceBookService) SetPrices(ctx context.Context, prices map[string]decimal.Decimal) error {
	for name, price := range prices {
		if err := s.SetPrice(ctx, name, price); err != nil {
			return err
		}
	}
	return nil
}

func (s *priceBookService) AddProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}

	product := domain.Product{Name: name, Price: domain.CoerceAmount(price)}
	if err := s.productRepo.AddProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to add product", slog.String("product", name))
		return nil, err
	}

	s.LogInfo(ctx, "Product added", slog.String("product", name), slog.String("price", product.Price.String()))
	return &product, nil
}
