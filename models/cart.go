package models

// CartItem pairs a product with the quantity selected. Quantity is always
// positive while the item is in a cart; dropping to zero removes the item.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered selection of items, at most one per product ID.
// Cart values are never mutated in place: every change goes through the
// cart package and yields a new value.
type Cart []CartItem
