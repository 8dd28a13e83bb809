package cart

import "quickbite/internal/model"

// Cart holds the menu items a user intends to order, with quantities.
// Entries are unique by item ID; repeated adds merge into the existing
// entry. Insertion order is preserved so displays and order snapshots
// are stable.
//
// A Cart is an explicitly owned state object: it is created per session
// and injected into whatever needs it, never shared as a global. It is
// not safe for concurrent use; the owning session serialises access.
type Cart struct {
	items []model.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add inserts a menu item with quantity 1, or increments the quantity
// of the existing entry with the same ID.
func (c *Cart) Add(item model.MenuItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, model.CartItem{MenuItem: item, Quantity: 1})
}

// UpdateQuantity sets the quantity of the entry with the given ID.
// A quantity of zero or less removes the entry. Unknown IDs are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return
	}
}

// Remove deletes the entry with the given ID. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) {
	c.UpdateQuantity(id, 0)
}

// ItemQuantity returns the quantity of the entry with the given ID,
// or 0 when the item is not in the cart.
func (c *Cart) ItemQuantity(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return c.items[i].Quantity
		}
	}
	return 0
}

// TotalItems returns the sum of quantities across all entries.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Quantity
	}
	return total
}

// TotalAmount returns the sum of price*quantity across all entries.
func (c *Cart) TotalAmount() int {
	total := 0
	for i := range c.items {
		total += c.items[i].Price * c.items[i].Quantity
	}
	return total
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []model.CartItem {
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}
