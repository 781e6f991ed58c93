package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a provider's published rate from one currency to another.
// Rates are directional: rate(A->B) need not equal 1/rate(B->A). At most one
// active row exists per (provider, from, to) triple.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	ProviderID     string          `json:"providerID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"` // Always positive
	LastUpdated    time.Time       `json:"lastUpdated"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
