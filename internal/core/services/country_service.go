package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// CountryService provides business logic for countries.
type CountryService struct {
	countryRepo  portsrepo.CountryRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewCountryService creates a new CountryService.
func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade, currencyRepo portsrepo.CurrencyReader) *CountryService {
	return &CountryService{countryRepo: countryRepo, currencyRepo: currencyRepo}
}

// CreateCountry handles the creation of a new country.
func (s *CountryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error) {
	// The local currency must exist before a country can reference it.
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.LocalCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: local currency '%s' not found", apperrors.ErrValidation, req.LocalCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate local currency '%s': %w", req.LocalCurrencyID, err)
	}

	now := time.Now()
	country := domain.Country{
		CountryID:       uuid.NewString(),
		Name:            req.Name,
		Abbreviation:    req.Abbreviation,
		LocalCurrencyID: req.LocalCurrencyID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.countryRepo.SaveCountry(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to create country in service: %w", err)
	}

	return &country, nil
}

// GetCountryByID retrieves a country by its ID.
func (s *CountryService) GetCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get country by id in service: %w", err)
	}
	return country, nil
}

// ListCountries retrieves all countries.
func (s *CountryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}
