package currency

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

const (
	// DefaultBase is the provider's default base currency.
	DefaultBase = "EUR"
	// Latest is the time indicator for the most recent rates.
	Latest = "latest"
)

// Normalize trims c and upper-cases it, ISO 4217 codes are upper case.
func Normalize(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

// ParseAmount parses a user supplied amount, surrounding blanks are ignored.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !govalidator.IsFloat(s) {
		return 0, false
	}
	f, err := govalidator.ToFloat(s)
	if err != nil {
		return 0, false
	}
	return f, true
}

// TimeIndicator returns t or Latest when t is blank.
func TimeIndicator(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return Latest
	}
	return t
}
