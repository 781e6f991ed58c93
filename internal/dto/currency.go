package dto

import (
	"time"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Abbreviation string `json:"abbreviation" binding:"required,uppercase,len=3"`
	Name         string `json:"name" binding:"required"`
	Symbol       string `json:"symbol" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    string    `json:"currencyID"`
	Abbreviation  string    `json:"abbreviation"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		Abbreviation:  curr.Abbreviation,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		IsActive:      curr.IsActive,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToCurrencyResponseSlice converts a slice of domain currencies.
func ToCurrencyResponseSlice(currs []domain.Currency) []CurrencyResponse {
	resp := make([]CurrencyResponse, len(currs))
	for i := range currs {
		resp[i] = ToCurrencyResponse(&currs[i])
	}
	return resp
}
