package catalog

import (
	"strconv"
	"strings"

	"quickbite/internal/model"
)

// Filter identifiers accepted by ApplyFilters. "offers" is declared in
// the storefront but carries no predicate beyond the text match.
const (
	FilterAll    = "all"
	FilterRating = "rating"
	FilterFast   = "fast"
	FilterVeg    = "veg"
	FilterOffers = "offers"
)

// fastDeliveryLimit is the inclusive delivery-time ceiling, in minutes,
// for the "fast" filter.
const fastDeliveryLimit = 30

// ApplyFilters derives the visible restaurant list from the full fetched
// set, a free-text query and a filter identifier. It is a pure function:
// the input slice is never mutated and identical inputs always yield an
// identical result. The text match and the filter predicate compose with
// logical AND.
func ApplyFilters(all []model.Restaurant, query, filterID string) []model.Restaurant {
	filtered := make([]model.Restaurant, 0, len(all))

	query = strings.ToLower(strings.TrimSpace(query))
	for _, r := range all {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if !matchesFilter(r, filterID) {
			continue
		}
		filtered = append(filtered, r)
	}

	return filtered
}

// matchesQuery reports whether the restaurant name or any cuisine tag
// contains the lower-cased query as a substring.
func matchesQuery(r model.Restaurant, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, cuisine := range r.CuisineTypes {
		if strings.Contains(strings.ToLower(cuisine), query) {
			return true
		}
	}
	return false
}

func matchesFilter(r model.Restaurant, filterID string) bool {
	switch filterID {
	case FilterRating:
		return r.Rating >= 4.0
	case FilterFast:
		minutes, ok := leadingInt(r.DeliveryTime)
		return ok && minutes <= fastDeliveryLimit
	case FilterVeg:
		for _, cuisine := range r.CuisineTypes {
			c := strings.ToLower(cuisine)
			if strings.Contains(c, "veg") || strings.Contains(c, "salad") {
				return true
			}
		}
		return false
	default:
		// "all", "offers" and anything unrecognised apply no predicate.
		return true
	}
}

// leadingInt parses the integer prefix of a delivery-time label such as
// "30 mins". Labels without a numeric prefix report ok=false.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
