package models

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"uniqueIndex;not null"      json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Stock       uint    `json:"stock"`
}

// CartItem holds at most one row per (session, product): adding a product
// that is already in the cart increments quantity instead of inserting.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"                 json:"id"`
	SessionID string  `gorm:"uniqueIndex:idx_session_product;not null" json:"session_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_session_product;not null" json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0"               json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID"                     json:"product"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
