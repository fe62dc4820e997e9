package models

import (
	"net/url"
	"strconv"
)

const DefaultPageSize = 9

// SearchFilters holds the search form state. Empty strings and nil bounds
// mean "not filtered" and are left out of the outgoing query entirely.
type SearchFilters struct {
	City         string
	Suburb       string
	ListingType  string
	MinBedrooms  *int
	MinBathrooms *int
	MinPrice     *int
	MaxPrice     *int
	Page         int
	PageSize     int
}

// ParseFilters reads the filter form values from a request query. Page
// defaults to 1, so a form submission without a page field always searches
// from the first page.
func ParseFilters(query url.Values) SearchFilters {
	f := SearchFilters{
		City:         query.Get("city"),
		Suburb:       query.Get("suburb"),
		ListingType:  query.Get("listingType"),
		MinBedrooms:  parseIntParam(query.Get("minBedrooms")),
		MinBathrooms: parseIntParam(query.Get("minBathrooms")),
		MinPrice:     parseIntParam(query.Get("minPrice")),
		MaxPrice:     parseIntParam(query.Get("maxPrice")),
		Page:         1,
		PageSize:     DefaultPageSize,
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 1 {
		f.Page = page
	}

	return f
}

// Values encodes the filters for the listing API, omitting every empty or
// absent field.
func (f SearchFilters) Values() url.Values {
	values := url.Values{}

	setStringParam(values, "city", f.City)
	setStringParam(values, "suburb", f.Suburb)
	setStringParam(values, "listingType", f.ListingType)
	setIntParam(values, "minBedrooms", f.MinBedrooms)
	setIntParam(values, "minBathrooms", f.MinBathrooms)
	setIntParam(values, "minPrice", f.MinPrice)
	setIntParam(values, "maxPrice", f.MaxPrice)

	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(f.PageSize))
	}

	return values
}

// WithPage returns a copy of the filters targeting another page. Every other
// field is carried over unchanged.
func (f SearchFilters) WithPage(page int) SearchFilters {
	f.Page = page
	return f
}

func parseIntParam(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func setStringParam(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setIntParam(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}
