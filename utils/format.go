package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dcode-github/property_portal_web/models"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a listing price with thousands separators. Rental
// listings get a "/month" suffix, sale listings show the bare amount.
func FormatPrice(price int, listingType string) string {
	formatted := pricePrinter.Sprintf("%d", price)
	if listingType == models.ListingTypeRent {
		return formatted + "/month"
	}
	return formatted
}
