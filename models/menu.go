package models

// Category is the closed set of menu groupings used everywhere: endpoint
// mapping, classification, filtering and display. Categories holds the
// canonical display order.
type Category string

const (
	CategoryBurgers    Category = "burgers"
	CategorySandwiches Category = "sandwiches"
	CategorySides      Category = "sides"
	CategoryCocktails  Category = "cocktails"
	CategoryBeverages  Category = "beverages"
	CategoryDesserts   Category = "desserts"
	CategoryMains      Category = "mains"
)

var Categories = []Category{
	CategoryBurgers,
	CategorySandwiches,
	CategorySides,
	CategoryCocktails,
	CategoryBeverages,
	CategoryDesserts,
	CategoryMains,
}

// RawRecord is one untrusted record as the upstream menu endpoints return it.
// Upstream is sloppy: ids come as strings or numbers, prices as numbers or
// currency strings ("$24.50"), and every field except the id may be missing.
// Unknown extra fields are simply ignored.
type RawRecord struct {
	ID      interface{} `json:"id"`
	Name    string      `json:"name"` // venue / restaurant name
	Dsc     string      `json:"dsc"`  // short description of the dish
	Price   interface{} `json:"price"`
	Img     string      `json:"img"`
	Rate    interface{} `json:"rate"`
	Country string      `json:"country"`
}

// MenuItem is a validated, normalized menu entry ready for display.
// Immutable once built; Price == nil means "price unknown", which is not
// the same thing as zero.
type MenuItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url,omitempty"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags,omitempty"`
}

// SortKey selects the ordering applied by the menu query engine.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// FilterState is the user-supplied query state (category, search text, sort,
// page). Empty string means "not set" for the string fields. The engine never
// mutates it; ownership stays with the caller.
type FilterState struct {
	Category Category
	Search   string
	Sort     SortKey
	Page     int
}
