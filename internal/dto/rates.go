package dto

// RateSnapshot is the provider's rate table relative to Base.
type RateSnapshot struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the rate for code and whether it is present.
func (s *RateSnapshot) Rate(code string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	r, ok := s.Rates[code]
	return r, ok
}

// ConversionResult wraps a converted amount.
type ConversionResult struct {
	Result float64 `json:"result"`
}

// Health is the liveness payload.
type Health struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}
