package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/dmarkin/webshop/internal/models"
)

func (r *GormRepo) GetItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertItem adds item.Quantity to the session's line for the product,
// inserting the line when there is none. Conditional UPDATE before
// INSERT in one transaction, so two concurrent adds for the same
// product cannot both insert; the unique index on (session_id,
// product_id) backstops the remaining window. The product is loaded in
// the same transaction, both to reject unknown product ids
// (gorm.ErrRecordNotFound) and to return the enriched item.
func (r *GormRepo) UpsertItem(ctx context.Context, item *models.CartItem) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prod models.Product
		if err := tx.First(&prod, item.ProductID).Error; err != nil {
			return err
		}

		res := tx.Model(&models.CartItem{}).
			Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			created = true
		}

		return tx.Preload("Product").
			Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).
			First(item).Error
	})
	return created, err
}

func (r *GormRepo) DeleteItem(ctx context.Context, sessionID string, id uint) error {
	res := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{}).Error
}
