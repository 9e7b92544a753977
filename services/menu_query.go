package services

import (
	"EmberHouse/models"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MenuPageSize is the page length used by the menu endpoints.
const MenuPageSize = 9

// unknownPriceLabel is shown whenever an item has no usable price.
const unknownPriceLabel = "Market Price"

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FilterMenu keeps items matching both optional criteria: category equality
// and a case-insensitive substring search over title plus description.
// An unset criterion matches everything. The input is never mutated.
func FilterMenu(items []models.MenuItem, state models.FilterState) []models.MenuItem {
	filtered := make([]models.MenuItem, 0, len(items))
	search := strings.ToLower(state.Search)

	for _, item := range items {
		if state.Category != "" && item.Category != state.Category {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(item.Title + item.Description)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SortMenu returns a sorted copy of items. Unpriced items always sort last,
// for price_desc as much as for price_asc: guessing is worse than showing
// "Market Price" at the bottom. The sort is stable and there is no secondary
// key; ties keep their input order.
func SortMenu(items []models.MenuItem, key models.SortKey) []models.MenuItem {
	sorted := make([]models.MenuItem, len(items))
	copy(sorted, items)

	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceLess(sorted[i].Price, sorted[j].Price, false)
		})
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priceLess(sorted[i].Price, sorted[j].Price, true)
		})
	}
	return sorted
}

func priceLess(a, b *float64, descending bool) bool {
	// nil never wins a comparison, so unknown prices sink to the end
	// regardless of direction.
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if descending {
		return *a > *b
	}
	return *a < *b
}

// PaginateMenu returns the 1-indexed page window. Out-of-range pages yield
// an empty list, never an error.
func PaginateMenu(items []models.MenuItem, page, perPage int) []models.MenuItem {
	if page < 1 || perPage < 1 {
		return []models.MenuItem{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []models.MenuItem{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// FormatCurrency renders a price for display: two-decimal localized dollars,
// or the unknown-price label when there is nothing to format.
func FormatCurrency(price *float64) string {
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) {
		return unknownPriceLabel
	}
	return currencyPrinter.Sprintf("$%.2f", *price)
}

// NormalizeQueryParam collapses whitespace-only query values to "absent".
// Anything with real content is returned untouched, interior and edge
// whitespace included.
func NormalizeQueryParam(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return value
}

// IsCategory reports whether value names one of the canonical categories.
func IsCategory(value string) bool {
	for _, category := range models.Categories {
		if string(category) == value {
			return true
		}
	}
	return false
}

// ParseSortKey maps a raw query value onto a SortKey; anything unknown
// means "no sort".
func ParseSortKey(value string) models.SortKey {
	switch models.SortKey(value) {
	case models.SortPriceAsc:
		return models.SortPriceAsc
	case models.SortPriceDesc:
		return models.SortPriceDesc
	default:
		return models.SortNone
	}
}

// ParsePageParam parses a page query value. Anything non-numeric,
// non-finite or below 1 defaults to page 1; fractional values floor.
// Values beyond the int32 range clamp instead of overflowing the
// float-to-int conversion.
func ParsePageParam(value string) int {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
		return 1
	}
	if parsed > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(parsed))
}
