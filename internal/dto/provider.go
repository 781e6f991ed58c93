package dto

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// CreateProviderRequest defines the data needed to create a new provider.
type CreateProviderRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"omitempty,url"`
}

// ProviderResponse defines the data returned for a provider.
type ProviderResponse struct {
	ProviderID string `json:"providerID"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	IsActive   bool   `json:"isActive"`
}

// ToProviderResponse converts a domain.Provider to ProviderResponse DTO.
func ToProviderResponse(p *domain.Provider) ProviderResponse {
	return ProviderResponse{
		ProviderID: p.ProviderID,
		Name:       p.Name,
		URL:        p.URL,
		IsActive:   p.IsActive,
	}
}

// ToProviderResponseSlice converts a slice of domain providers.
func ToProviderResponseSlice(ps []domain.Provider) []ProviderResponse {
	resp := make([]ProviderResponse, len(ps))
	for i := range ps {
		resp[i] = ToProviderResponse(&ps[i])
	}
	return resp
}
