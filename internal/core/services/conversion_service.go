package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ConversionService converts amounts between currencies using one provider's
// published rates. Resolution order: identity, direct rate, single hop through
// the pivot currency. No general path search is attempted: providers publish
// at most direct-or-via-pivot pairs, which bounds a conversion to three rate
// reads.
type ConversionService struct {
	currencyReader portsrepo.CurrencyReader
	rateReader     portsrepo.ExchangeRateReader
	pivotCode      string
	logger         *slog.Logger
}

// NewConversionService creates a new ConversionService. pivotCode is the
// abbreviation of the pivot currency, e.g. "USD".
func NewConversionService(
	currencyReader portsrepo.CurrencyReader,
	rateReader portsrepo.ExchangeRateReader,
	pivotCode string,
	logger *slog.Logger,
) *ConversionService {
	return &ConversionService{
		currencyReader: currencyReader,
		rateReader:     rateReader,
		pivotCode:      pivotCode,
		logger:         logger,
	}
}

// Convert converts amount from one currency to another through providerID's
// rates. Amounts are rounded to 2 decimal places; the effective rate keeps
// full precision (display rounding happens in the DTO layer).
func (s *ConversionService) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to *domain.Currency,
	providerID string,
) (*domain.Conversion, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: currency not provided", apperrors.ErrValidation)
	}

	originalAmount := amount.Round(2)

	// Same currency on both ends, nothing to look up.
	if from.CurrencyID == to.CurrencyID {
		return &domain.Conversion{
			ConvertedAmount: originalAmount,
			ExchangeRate:    one,
			Path:            []string{from.Abbreviation},
		}, nil
	}

	// Direct rate first.
	direct, err := s.rateReader.FindRate(ctx, providerID, from.CurrencyID, to.CurrencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up direct rate %s->%s: %w", from.Abbreviation, to.Abbreviation, err)
	}
	if direct != nil {
		s.logger.Debug("direct conversion",
			slog.String("from", from.Abbreviation),
			slog.String("to", to.Abbreviation),
			slog.String("rate", direct.Rate.String()),
		)
		return &domain.Conversion{
			ConvertedAmount: originalAmount.Mul(direct.Rate).Round(2),
			ExchangeRate:    direct.Rate,
			Path:            []string{from.Abbreviation, to.Abbreviation},
		}, nil
	}

	// No direct rate; try composing through the pivot currency.
	pivot, err := s.currencyReader.FindCurrencyByAbbreviation(ctx, s.pivotCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no active %s currency", apperrors.ErrPivotCurrencyMissing, s.pivotCode)
		}
		return nil, fmt.Errorf("failed to look up pivot currency %s: %w", s.pivotCode, err)
	}

	toPivot, err := s.rateReader.FindRate(ctx, providerID, from.CurrencyID, pivot.CurrencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up rate %s->%s: %w", from.Abbreviation, pivot.Abbreviation, err)
	}
	fromPivot, err := s.rateReader.FindRate(ctx, providerID, pivot.CurrencyID, to.CurrencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up rate %s->%s: %w", pivot.Abbreviation, to.Abbreviation, err)
	}

	if toPivot != nil && fromPivot != nil {
		amountInPivot := originalAmount.Mul(toPivot.Rate)
		s.logger.Debug("pivot conversion",
			slog.String("from", from.Abbreviation),
			slog.String("via", pivot.Abbreviation),
			slog.String("to", to.Abbreviation),
		)
		return &domain.Conversion{
			ConvertedAmount: amountInPivot.Mul(fromPivot.Rate).Round(2),
			ExchangeRate:    toPivot.Rate.Mul(fromPivot.Rate),
			Path:            []string{from.Abbreviation, pivot.Abbreviation, to.Abbreviation},
		}, nil
	}

	return nil, fmt.Errorf("%w: no rate path from %s to %s for provider %s",
		apperrors.ErrConversionUnavailable, from.Abbreviation, to.Abbreviation, providerID)
}
