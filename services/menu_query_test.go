package services

import (
	"EmberHouse/models"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Title: "Smash Burger", Description: "Double patty from Smoke Shack.", Price: floatPtr(17), Category: models.CategoryBurgers},
		{ID: "2", Title: "Brisket Plate", Description: "Slow smoked for fourteen hours.", Price: floatPtr(26), Category: models.CategoryMains},
		{ID: "3", Title: "Maple Old Fashioned", Description: "Featured by the bar.", Price: floatPtr(14), Category: models.CategoryCocktails},
		{ID: "4", Title: "Seasonal Catch", Description: "Ask your server.", Price: nil, Category: models.CategoryMains},
		{ID: "5", Title: "Fried Pickles", Description: "House brined.", Price: floatPtr(9), Category: models.CategorySides},
	}
}

func TestFilterMenu(t *testing.T) {
	items := queryFixture()

	t.Run("by category", func(t *testing.T) {
		got := FilterMenu(items, models.FilterState{Category: models.CategoryMains})
		require.Len(t, got, 2)
		for _, item := range got {
			assert.Equal(t, models.CategoryMains, item.Category)
		}
	})

	t.Run("by search over title and description", func(t *testing.T) {
		got := FilterMenu(items, models.FilterState{Search: "SMOKED"})
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("category and search are ANDed", func(t *testing.T) {
		got := FilterMenu(items, models.FilterState{Category: models.CategoryMains, Search: "server"})
		require.Len(t, got, 1)
		assert.Equal(t, "4", got[0].ID)
	})

	t.Run("search spans the title-description boundary", func(t *testing.T) {
		// matching runs over the plain concatenation of title and
		// description, with nothing inserted between them
		got := FilterMenu(items, models.FilterState{Search: "burgerdouble"})
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("no criteria keeps everything", func(t *testing.T) {
		assert.Len(t, FilterMenu(items, models.FilterState{}), len(items))
	})
}

func TestSortMenu(t *testing.T) {
	items := queryFixture()

	t.Run("price ascending, unpriced last", func(t *testing.T) {
		got := SortMenu(items, models.SortPriceAsc)
		ids := itemIDs(got)
		assert.Equal(t, []string{"5", "3", "1", "2", "4"}, ids)
	})

	t.Run("price descending, unpriced still last", func(t *testing.T) {
		got := SortMenu(items, models.SortPriceDesc)
		ids := itemIDs(got)
		assert.Equal(t, []string{"2", "1", "3", "5", "4"}, ids)
	})

	t.Run("no sort key keeps original order", func(t *testing.T) {
		got := SortMenu(items, models.SortNone)
		assert.Equal(t, itemIDs(items), itemIDs(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := itemIDs(items)
		SortMenu(items, models.SortPriceAsc)
		assert.Equal(t, before, itemIDs(items))
	})
}

func TestPaginateMenu(t *testing.T) {
	items := make([]models.MenuItem, 10)
	for i := range items {
		items[i] = models.MenuItem{ID: strconv.Itoa(i + 1)}
	}

	assert.Equal(t, []string{"4", "5", "6"}, itemIDs(PaginateMenu(items, 2, 3)))
	assert.Equal(t, []string{"10"}, itemIDs(PaginateMenu(items, 4, 3)))
	assert.Empty(t, PaginateMenu(items, 10, 3))
	assert.Empty(t, PaginateMenu(items, 0, 3))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$25.00", FormatCurrency(floatPtr(25)))
	assert.Equal(t, "$24.50", FormatCurrency(floatPtr(24.5)))
	assert.Equal(t, "$1,299.00", FormatCurrency(floatPtr(1299)))
	assert.Equal(t, "Market Price", FormatCurrency(nil))
}

func TestNormalizeQueryParam(t *testing.T) {
	assert.Equal(t, "", NormalizeQueryParam(""))
	assert.Equal(t, "", NormalizeQueryParam("   "))
	// real content keeps its whitespace untouched
	assert.Equal(t, " salmon ", NormalizeQueryParam(" salmon "))
	assert.Equal(t, "salmon", NormalizeQueryParam("salmon"))
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("burgers"))
	assert.True(t, IsCategory("cocktails"))
	assert.False(t, IsCategory("pizza"))
	assert.False(t, IsCategory(""))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortPriceAsc, ParseSortKey("price_asc"))
	assert.Equal(t, models.SortPriceDesc, ParseSortKey("price_desc"))
	assert.Equal(t, models.SortNone, ParseSortKey("alphabetical"))
	assert.Equal(t, models.SortNone, ParseSortKey(""))
}

func TestParsePageParam(t *testing.T) {
	assert.Equal(t, 3, ParsePageParam("3"))
	assert.Equal(t, 1, ParsePageParam("-5"))
	assert.Equal(t, 3, ParsePageParam("3.7"))
	assert.Equal(t, 1, ParsePageParam("abc"))
	assert.Equal(t, 1, ParsePageParam(""))
	assert.Equal(t, 1, ParsePageParam("0"))

	// huge finite values clamp instead of overflowing the conversion
	assert.Equal(t, math.MaxInt32, ParsePageParam("1e30"))
	assert.GreaterOrEqual(t, ParsePageParam("9999999999999999999"), 1)
}

func itemIDs(items []models.MenuItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
