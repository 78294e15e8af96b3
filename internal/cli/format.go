package cli

import (
	"fmt"
	"strings"

	"trade-tracker/internal/models"
)

// NotAvailable is the display marker for an unknown value. Rounding to two
// decimals happens here and only here: stored values are never rounded.
const NotAvailable = "N/A"

// FormatIndianCurrency formats a number in Indian currency format (lakhs, crores).
func FormatIndianCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	result := "₹" + formatIndianNumber(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// formatIndianNumber formats an integer string in Indian numbering system.
// Indian system: 1,00,00,000 (1 crore) vs Western: 10,000,000
func formatIndianNumber(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// First group of 3 from right (hundreds)
	result := s[n-3:]
	s = s[:n-3]

	// Then groups of 2 (thousands, lakhs, crores)
	for len(s) > 0 {
		if len(s) >= 2 {
			result = s[len(s)-2:] + "," + result
			s = s[:len(s)-2]
		} else {
			result = s + "," + result
			s = ""
		}
	}

	return result
}

// FormatPrice formats a known price to two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// FormatOptionalPrice renders an unknown price as N/A.
func FormatOptionalPrice(price *float64) string {
	if price == nil {
		return NotAvailable
	}
	return FormatPrice(*price)
}

// FormatOptionalRatio renders a risk-reward ratio, N/A when unknown.
func FormatOptionalRatio(rr *float64) string {
	if rr == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *rr)
}

// FormatOptionalInt renders an unknown integer as N/A.
func FormatOptionalInt(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d", *v)
}

// FormatDate renders a date cell, N/A when unset.
func FormatDate(d models.Date) string {
	if d.IsZero() {
		return NotAvailable
	}
	return d.String()
}

// FormatStars renders a 1-5 confidence score as filled and hollow stars.
func FormatStars(score *int) string {
	if score == nil {
		return NotAvailable
	}
	n := *score
	if n < models.MinConfidence {
		n = models.MinConfidence
	}
	if n > models.MaxConfidence {
		n = models.MaxConfidence
	}
	var b strings.Builder
	for i := 0; i < models.MaxConfidence; i++ {
		if i < n {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// TruncateString truncates a string to max length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
