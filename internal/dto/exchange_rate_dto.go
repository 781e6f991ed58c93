package dto

import (
	"time"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the data needed to publish a rate.
type CreateExchangeRateRequest struct {
	ProviderID     string          `json:"providerID" binding:"required,uuid"`
	FromCurrencyID string          `json:"fromCurrencyID" binding:"required,uuid"`
	ToCurrencyID   string          `json:"toCurrencyID" binding:"required,uuid"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
// Rates are rounded to 4 decimal places for display only.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	ProviderID     string          `json:"providerID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	IsActive       bool            `json:"isActive"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: r.ExchangeRateID,
		ProviderID:     r.ProviderID,
		FromCurrencyID: r.FromCurrencyID,
		ToCurrencyID:   r.ToCurrencyID,
		Rate:           r.Rate.Round(4),
		LastUpdated:    r.LastUpdated,
		IsActive:       r.IsActive,
	}
}

// ToExchangeRateResponseSlice converts a slice of domain exchange rates.
func ToExchangeRateResponseSlice(rs []domain.ExchangeRate) []ExchangeRateResponse {
	resp := make([]ExchangeRateResponse, len(rs))
	for i := range rs {
		resp[i] = ToExchangeRateResponse(&rs[i])
	}
	return resp
}
