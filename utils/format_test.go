package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price       int
		listingType string
		want        string
	}{
		{1200000, "Sale", "1,200,000"},
		{2500, "Rent", "2,500/month"},
		{950, "Rent", "950/month"},
		{85000000, "Sale", "85,000,000"},
		{0, "Sale", "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price, tt.listingType))
	}
}
