package dependency

import (
	"context"

	"github.com/jekabolt/currency-exchange/internal/dto"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Reference interface {
		// LookupByCountry returns the currency record of a country, matched case-insensitively.
		LookupByCountry(ctx context.Context, countryName string) (*dto.CurrencyRecord, error)
		// LookupByCurrencyCode returns a currency with every country using it.
		LookupByCurrencyCode(ctx context.Context, currencyCode string) (*dto.CurrencyUnion, error)
		// CountEntries returns the size of the reference table.
		CountEntries(ctx context.Context) (int, error)
	}

	Rates interface {
		// GetRates returns the provider rate table for a time indicator.
		GetRates(ctx context.Context, timeIndicator string) (*dto.RateSnapshot, error)
		// GetExchangeRate returns how many target units one base unit buys.
		GetExchangeRate(ctx context.Context, target, base, timeIndicator string) (float64, error)
		// Convert converts amount from one currency into another.
		Convert(ctx context.Context, amount float64, from, to, timeIndicator string) (float64, error)
	}
)
