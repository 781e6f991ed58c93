package repositories

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindRate retrieves the active rate a provider publishes for a directional
	// currency pair. Returns apperrors.ErrNotFound when no active row exists.
	FindRate(ctx context.Context, providerID, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error)

	// ListRatesByProvider retrieves all active rates for one provider.
	ListRatesByProvider(ctx context.Context, providerID string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
