package models

const (
	ListingTypeSale = "Sale"
	ListingTypeRent = "Rent"
)

const placeholderImage = "https://via.placeholder.com/800x400"

type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Suburb      string   `json:"suburb"`
	City        string   `json:"city"`
	Price       int      `json:"price"`
	ListingType string   `json:"listingType"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	CarSpots    int      `json:"carSpots"`
	ImageURLs   []string `json:"imageUrls"`
	IsFavorite  bool     `json:"isFavorite"`
}

type SearchResult struct {
	Properties []Property `json:"properties"`
	TotalCount int        `json:"totalCount"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
}

// PrimaryImage returns the first listing photo, falling back to a
// placeholder for listings without any.
func (p Property) PrimaryImage() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return placeholderImage
}

// ExtraImages returns every photo after the primary one.
func (p Property) ExtraImages() []string {
	if len(p.ImageURLs) > 1 {
		return p.ImageURLs[1:]
	}
	return nil
}
