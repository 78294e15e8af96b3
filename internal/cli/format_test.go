package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trade-tracker/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestIndianNumberFormatExamples(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "₹0.00"},
		{1, "₹1.00"},
		{100, "₹100.00"},
		{1000, "₹1,000.00"},
		{10000, "₹10,000.00"},
		{100000, "₹1,00,000.00"},      // 1 lakh
		{1000000, "₹10,00,000.00"},    // 10 lakhs
		{10000000, "₹1,00,00,000.00"}, // 1 crore
		{-1234.56, "-₹1,234.56"},
		{12345678.90, "₹1,23,45,678.90"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatIndianCurrency(tc.amount))
		})
	}
}

func TestFormatOptionalValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", FormatOptionalPrice(nil))
	assert.Equal(t, "105.25", FormatOptionalPrice(fptr(105.25)))
	// Zero is a real value, never N/A.
	assert.Equal(t, "0.00", FormatOptionalPrice(fptr(0)))

	assert.Equal(t, "N/A", FormatOptionalRatio(nil))
	assert.Equal(t, "0.10", FormatOptionalRatio(fptr(0.1)))

	assert.Equal(t, "N/A", FormatOptionalInt(nil))
	assert.Equal(t, "2", FormatOptionalInt(iptr(2)))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", FormatDate(models.Date{}))
	assert.Equal(t, "2024-03-05", FormatDate(models.NewDate(2024, time.March, 5)))
}

func TestFormatStars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", FormatStars(nil))
	assert.Equal(t, "★☆☆☆☆", FormatStars(iptr(1)))
	assert.Equal(t, "★★★☆☆", FormatStars(iptr(3)))
	assert.Equal(t, "★★★★★", FormatStars(iptr(5)))
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "a long ...", TruncateString("a long string here", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}
