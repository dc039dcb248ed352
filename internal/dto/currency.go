package dto

// CurrencyRecord is one row of the country/currency reference table.
type CurrencyRecord struct {
	Country      string `json:"country"`
	CurrencyName string `json:"currencyName"`
	CurrencyCode string `json:"currencyCode"`
}

// CurrencyUnion groups every country using the same currency code.
type CurrencyUnion struct {
	CurrencyCode string   `json:"currencyCode"`
	CurrencyName string   `json:"currencyName"`
	Country      []string `json:"country"`
}

// SearchRequest is the body of a reference search, one of the fields must be set.
type SearchRequest struct {
	Country      string `json:"Country,omitempty"`
	CurrencyCode string `json:"CurrencyCode,omitempty"`
}
