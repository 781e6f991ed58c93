package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// ExchangeRateSvcFacade defines the business operations for exchange rates.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	GetRate(ctx context.Context, providerID, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error)
	ListRatesByProvider(ctx context.Context, providerID string) ([]domain.ExchangeRate, error)
}
