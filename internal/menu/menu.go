package menu

import "quickbite/internal/model"

// CategoryAll is the synthetic category that selects every menu item.
const CategoryAll = "all"

// Categories returns "all" followed by the distinct category labels
// present in the items, in first-seen order.
func Categories(items []model.MenuItem) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

// FilterByCategory keeps items whose category label matches exactly, or
// all items when the "all" category is selected.
func FilterByCategory(items []model.MenuItem, category string) []model.MenuItem {
	if category == CategoryAll || category == "" {
		out := make([]model.MenuItem, len(items))
		copy(out, items)
		return out
	}

	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// DisplayItem is a menu item annotated with the quantity of that item
// currently in the cart, 0 when absent.
type DisplayItem struct {
	model.MenuItem
	QuantityInCart int `json:"quantity_in_cart"`
}

// QuantityLookup resolves the cart quantity for an item ID.
type QuantityLookup interface {
	ItemQuantity(id string) int
}

// WithQuantities merges cart quantities into the items for display.
func WithQuantities(items []model.MenuItem, cart QuantityLookup) []DisplayItem {
	out := make([]DisplayItem, len(items))
	for i, item := range items {
		out[i] = DisplayItem{
			MenuItem:       item,
			QuantityInCart: cart.ItemQuantity(item.ID),
		}
	}
	return out
}
