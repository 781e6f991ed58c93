package dto

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// CreateCountryRequest defines the data needed to create a new country.
type CreateCountryRequest struct {
	Name            string `json:"name" binding:"required"`
	Abbreviation    string `json:"abbreviation" binding:"required,uppercase,min=2,max=3"`
	LocalCurrencyID string `json:"localCurrencyID" binding:"required,uuid"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	CountryID       string `json:"countryID"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	LocalCurrencyID string `json:"localCurrencyID"`
	IsActive        bool   `json:"isActive"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO.
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		CountryID:       c.CountryID,
		Name:            c.Name,
		Abbreviation:    c.Abbreviation,
		LocalCurrencyID: c.LocalCurrencyID,
		IsActive:        c.IsActive,
	}
}

// ToCountryResponseSlice converts a slice of domain countries.
func ToCountryResponseSlice(cs []domain.Country) []CountryResponse {
	resp := make([]CountryResponse, len(cs))
	for i := range cs {
		resp[i] = ToCountryResponse(&cs[i])
	}
	return resp
}
