package forms

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Digits keeps only ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func limit(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// CardNumber formats up to 16 digits in groups of four.
func CardNumber(s string) string {
	d := limit(Digits(s), 16)
	var parts []string
	for len(d) > 4 {
		parts = append(parts, d[:4])
		d = d[4:]
	}
	if d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " ")
}

// Expiry formats MM/AAAA.
func Expiry(s string) string {
	d := limit(Digits(s), 6)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

func CVV(s string) string {
	return limit(Digits(s), 4)
}

// Phone formats (DD) DDDD-DDDD, or (DD) DDDDD-DDDD for eleven digits.
func Phone(s string) string {
	d := limit(Digits(s), 11)
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

func CEP(s string) string {
	d := limit(Digits(s), 8)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// PriceFromCents reads typed digits as cents: "1250" becomes "12,50".
func PriceFromCents(s string) string {
	d := Digits(s)
	if d == "" {
		return "0,00"
	}
	cents := decimal.RequireFromString(d).Shift(-2)
	return strings.Replace(cents.StringFixed(2), ".", ",", 1)
}

// ParsePrice accepts "12,50" or "12.50".
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
