package transport

// AddItemRequest is the body of POST /cart/items/. Quantity is a
// pointer so an absent field defaults to 1 while an explicit 0 or a
// negative value is rejected.
type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}
