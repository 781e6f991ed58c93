package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores a provider's directional conversion rate.
// Note: Rate uses a precise decimal type (github.com/shopspring/decimal).
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	ProviderID     string          `json:"providerID"`     // FK -> providers.provider_id
	FromCurrencyID string          `json:"fromCurrencyID"` // FK -> currencies.currency_id
	ToCurrencyID   string          `json:"toCurrencyID"`   // FK -> currencies.currency_id
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
