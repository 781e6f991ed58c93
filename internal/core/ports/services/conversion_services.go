package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade converts an amount between two currencies through one
// provider's rates, using a direct rate or a single pivot hop.
type ConversionSvcFacade interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to *domain.Currency, providerID string) (*domain.Conversion, error)
}
