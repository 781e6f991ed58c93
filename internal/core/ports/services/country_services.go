package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// CountrySvcFacade defines the business operations for countries.
type CountrySvcFacade interface {
	CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error)
	GetCountryByID(ctx context.Context, countryID string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}
