package model

// CartItem is a menu item the user intends to order, with a quantity.
// Quantity is always >= 1; an entry whose quantity would drop to zero
// is removed from the cart instead.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
