package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// CurrencySvcFacade defines the business operations for currencies.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	GetCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
