package transport

// ProductRequest is the body of both POST /products/ and PUT
// /products/:id. Updates replace every mutable field, so the two share
// a shape. Price and Stock are validated in the service layer so that
// out-of-range values map to 422 instead of a bind error.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}
