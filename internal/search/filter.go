// Package search translates the raw, stringly-typed property search query
// into a structured filter predicate. Every recognized key is enumerated
// here; anything else in the query string is ignored.
package search

import (
	"net/url"
	"strconv"
	"strings"

	"estatehub/internal/domain/property"
)

// ParseFilter builds a SearchFilter from query parameters. Numeric values are
// parsed defensively: a missing or unparsable page/limit falls back to the
// defaults, every other missing or unparsable numeric is omitted from the
// predicate instead of degrading to a zero bound.
func ParseFilter(values url.Values) property.SearchFilter {
	f := property.SearchFilter{
		Location:     strings.TrimSpace(values.Get("location")),
		RadiusMeters: property.DefaultRadiusMeters,
		Page:         positiveIntOr(values.Get("page"), property.DefaultPage),
		Limit:        positiveIntOr(values.Get("limit"), property.DefaultLimit),
	}

	f.PriceMin = parseFloat(values.Get("priceMin"))
	f.PriceMax = parseFloat(values.Get("priceMax"))
	f.NumBedrooms = parseInt(values.Get("numBedrooms"))
	f.NumBathrooms = parseInt(values.Get("numBathrooms"))
	f.MinSquareMeters = parseFloat(values.Get("squareMeters"))
	f.YearBuilt = parseInt(values.Get("yearBuilt"))

	if s := property.Status(values.Get("status")); property.ValidStatus(s) {
		f.Status = &s
	}
	if t := property.PropertyType(values.Get("propertyType")); property.ValidPropertyType(t) {
		f.PropertyType = &t
	}

	f.Latitude = parseFloat(values.Get("latitude"))
	f.Longitude = parseFloat(values.Get("longitude"))
	if r := parseFloat(values.Get("radius")); r != nil && *r > 0 {
		f.RadiusMeters = *r
	}

	return f
}

func positiveIntOr(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
