package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/dmarkin/webshop/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// likeEscaper neutralizes LIKE metacharacters so the query matches as
// a literal substring, paired with ESCAPE '\' in the filter.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListProducts returns every product, or the subset whose name or
// description contains query case-insensitively. LOWER/LIKE instead of
// ILIKE so the same filter runs on postgres and the sqlite test db.
func (r *GormRepo) ListProducts(ctx context.Context, query string) ([]models.Product, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Product{}).Order("id ASC")
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		tx = tx.Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	items := []models.Product{}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Product{}).Where("name = ?", prod.Name).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateName
		}
		return tx.Create(prod).Error
	})
}

// ReplaceProduct overwrites all mutable fields of the product with id.
func (r *GormRepo) ReplaceProduct(ctx context.Context, id uint, fields models.Product) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prod, id).Error; err != nil {
			return err
		}

		var taken int64
		if err := tx.Model(&models.Product{}).
			Where("name = ? AND id <> ?", fields.Name, id).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateName
		}

		prod.Name = fields.Name
		prod.Description = fields.Description
		prod.Price = fields.Price
		prod.Stock = fields.Stock

		return tx.Save(&prod).Error
	}); err != nil {
		return nil, err
	}
	return &prod, nil
}

// DeleteProduct removes the product and, in the same transaction, every
// cart item referencing it.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cart items first, the foreign key points at the product row
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
