package repositories

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// CountryReader defines read operations for country data.
type CountryReader interface {
	// FindCountryByID retrieves a country by its ID.
	FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error)

	// ListCountries retrieves all available countries.
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// CountryWriter defines write operations for country data.
type CountryWriter interface {
	// SaveCountry persists a new country.
	SaveCountry(ctx context.Context, country domain.Country) error
}

// CountryRepositoryFacade combines all country-related repository interfaces.
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}
