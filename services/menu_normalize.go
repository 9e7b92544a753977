package services

import (
	"EmberHouse/models"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fallbackDescription is used when a record carries neither a description
// nor a venue name.
const fallbackDescription = "A house favorite from the Ember House kitchen."

var imageURLPattern = regexp.MustCompile(`^https?://`)

// priceSanitizePattern drops everything that is not a digit or a decimal
// point before parsing a currency-formatted string ("$24.50" -> "24.50").
var priceSanitizePattern = regexp.MustCompile(`[^0-9.]`)

// categoryKeywords drives the keyword classifier. A category with no entry
// accepts every title; cocktails and beverages share the upstream /drinks
// endpoint and are split apart by these lists.
var categoryKeywords = map[models.Category][]string{
	models.CategoryCocktails: {
		"old fashioned", "martini", "margarita", "mojito", "negroni",
		"daiquiri", "manhattan", "paloma", "spritz", "sour", "mule",
		"sangria", "punch", "colada",
	},
	models.CategoryBeverages: {
		"coffee", "tea", "juice", "soda", "lemonade", "cola", "milkshake",
		"shake", "smoothie", "cocoa", "water", "float",
	},
}

// ParsePrice turns a raw price field into a clean value. A nil result means
// "price unknown" and is deliberately distinct from zero. Numbers pass
// through when finite; strings are sanitized and parsed; everything else is
// unknown. It never returns an error.
func ParsePrice(raw interface{}) *float64 {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case string:
		sanitized := priceSanitizePattern.ReplaceAllString(v, "")
		parsed, err := strconv.ParseFloat(sanitized, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// MatchesCategory reports whether a title belongs to the target category.
// Categories without keywords match everything; otherwise at least one
// keyword must appear in the title, case-insensitively.
func MatchesCategory(title string, category models.Category) bool {
	keywords := categoryKeywords[category]
	if len(keywords) == 0 {
		return true
	}
	lowered := strings.ToLower(title)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// SynthesizeDescription builds a display description from the raw short
// description and venue name. Always non-empty.
func SynthesizeDescription(dsc, venue string) string {
	dsc = strings.TrimSpace(dsc)
	venue = strings.TrimSpace(venue)

	if dsc != "" && venue != "" && !strings.Contains(strings.ToLower(venue), strings.ToLower(dsc)) {
		return fmt.Sprintf("%s from %s.", dsc, venue)
	}
	if venue != "" {
		return fmt.Sprintf("Featured by %s.", venue)
	}
	return fallbackDescription
}

// NormalizeRecord converts one validated raw record into a MenuItem, or nil
// when the record has no usable title or does not belong to the target
// category.
func NormalizeRecord(record models.RawRecord, category models.Category) *models.MenuItem {
	title := strings.TrimSpace(record.Dsc)
	if title == "" {
		title = strings.TrimSpace(record.Name)
	}
	if title == "" {
		return nil
	}
	if !MatchesCategory(title, category) {
		return nil
	}

	item := &models.MenuItem{
		ID:          stringifyID(record.ID),
		Title:       title,
		Description: SynthesizeDescription(record.Dsc, record.Name),
		Price:       ParsePrice(record.Price),
		Category:    category,
	}
	if imageURLPattern.MatchString(record.Img) {
		item.ImageURL = record.Img
	}
	return item
}

// stringifyID derives the stable item key from the raw identifier, which
// upstream sends either as a string or as a number.
func stringifyID(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
