package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/dmarkin/webshop/internal/models"
	"github.com/dmarkin/webshop/pkg/logging"
	"github.com/dmarkin/webshop/services/catalog/internal/repo"
	"github.com/dmarkin/webshop/services/catalog/internal/search"
	"github.com/dmarkin/webshop/services/catalog/internal/transport"
)

var (
	ErrValidation = errors.New("validation")
	ErrConflict   = errors.New("conflict")
)

const searchPageSize = 50

type CatalogService struct {
	Repo *repo.GormRepo

	// optional, nil means SQL-only search and no indexing
	ES      *elasticsearch.Client
	ESIndex string
}

func validate(req transport.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock must not be negative: %w", ErrValidation)
	}
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, query string) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, query)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	prod := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       uint(req.Stock),
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		if errors.Is(err, repo.ErrDuplicateName) {
			return nil, fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return nil, err
	}

	s.indexProduct(ctx, prod)
	return prod, nil
}

func (s *CatalogService) ReplaceProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	prod, err := s.Repo.ReplaceProduct(ctx, id, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       uint(req.Stock),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateName) {
			return nil, fmt.Errorf("%v: %w", err, ErrConflict)
		}
		return nil, err
	}

	s.indexProduct(ctx, prod)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if s.ES != nil {
		if err := search.DeleteProduct(ctx, s.ES, s.ESIndex, id); err != nil {
			logging.FromContext(ctx).Warn("es_delete_failed", "product_id", id, "error", err)
		}
	}
	return nil
}

// SearchProducts serves the fuzzy search endpoint. Falls back to the
// SQL substring filter when no ES client is wired.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if s.ES == nil {
		return s.Repo.ListProducts(ctx, query)
	}
	return search.Search(ctx, s.ES, s.ESIndex, query, searchPageSize)
}

// indexProduct is best-effort: the row store stays authoritative and a
// failed index write must not fail the request.
func (s *CatalogService) indexProduct(ctx context.Context, prod *models.Product) {
	if s.ES == nil {
		return
	}
	if err := search.IndexProduct(ctx, s.ES, s.ESIndex, prod); err != nil {
		logging.FromContext(ctx).Warn("es_index_failed", "product_id", prod.ID, "error", err)
	}
}
