package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// CurrencyService provides business logic for currencies.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency handles the creation of a new currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	// Format validation (required, len=3, uppercase) is handled by DTO binding tags.
	now := time.Now()

	currency := domain.Currency{
		CurrencyID:   uuid.NewString(),
		Abbreviation: req.Abbreviation,
		Name:         req.Name,
		Symbol:       req.Symbol,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByID retrieves a currency by its ID.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}
	return currency, nil
}

// GetCurrencyByAbbreviation retrieves an active currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByAbbreviation(ctx, abbreviation)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by abbreviation in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
