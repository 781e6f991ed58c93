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
	portssvc "github.com/movaro/transfer_offers_app/internal/core/ports/services"
	"github.com/movaro/transfer_offers_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for provider exchange rates.
type ExchangeRateService struct {
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencySvcFacade) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// CreateExchangeRate handles publication of a new directional rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}

	// Check if currencies exist
	if _, err := s.currencyService.GetCurrencyByID(ctx, req.FromCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency '%s' not found", apperrors.ErrValidation, req.FromCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate 'from' currency '%s': %w", req.FromCurrencyID, err)
	}
	if _, err := s.currencyService.GetCurrencyByID(ctx, req.ToCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency '%s' not found", apperrors.ErrValidation, req.ToCurrencyID)
		}
		return nil, fmt.Errorf("failed to validate 'to' currency '%s': %w", req.ToCurrencyID, err)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		ProviderID:     req.ProviderID,
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		LastUpdated:    now,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	return &rate, nil
}

// GetRate retrieves the active rate for a provider's directional currency pair.
func (s *ExchangeRateService) GetRate(ctx context.Context, providerID, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRate(ctx, providerID, fromCurrencyID, toCurrencyID)
	if err != nil {
		// Repository layer handles ErrNotFound mapping.
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListRatesByProvider retrieves all active rates published by one provider.
func (s *ExchangeRateService) ListRatesByProvider(ctx context.Context, providerID string) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRatesByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
