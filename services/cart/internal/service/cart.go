package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dmarkin/webshop/internal/models"
	"github.com/dmarkin/webshop/services/cart/internal/repo"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return s.Repo.GetItems(ctx, sessionID)
}

// AddItem upserts a line item keyed by (session, product) and returns
// it enriched with the product, plus whether a new line was created.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint, quantity int) (*models.CartItem, bool, error) {
	if productID == 0 {
		return nil, false, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, false, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	item := &models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  uint(quantity),
	}
	created, err := s.Repo.UpsertItem(ctx, item)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("product %d does not exist: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, false, err
	}
	return item, created, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, id uint) error {
	err := s.Repo.DeleteItem(ctx, sessionID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item %d does not exist: %w", id, ErrNotFound)
	}
	return err
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.Repo.ClearCart(ctx, sessionID)
}
