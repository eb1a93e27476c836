package models

// CartItem is a cart line: a product snapshot plus the accumulated
// quantity. Session state only, never persisted.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
