// Package cacherepo decorates repositories with in-memory caching for hot
// reference data reads.
package cacherepo

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/pkg/cache"
)

// CachingCurrencyRepository wraps a currency repository and serves repeat
// lookups from memory. Abbreviation lookups (the pivot currency above all) sit
// in a per-entry TTL cache with a long horizon; ID lookups go through a small
// bounded LRU with a short TTL since evaluation bursts hammer the same few
// currencies. Writes invalidate both caches wholesale.
type CachingCurrencyRepository struct {
	inner portsrepo.CurrencyRepositoryFacade

	byAbbreviation  *cache.Cache[domain.Currency]
	abbreviationTTL time.Duration

	byID *expirable.LRU[string, domain.Currency]

	logger *slog.Logger
}

var _ portsrepo.CurrencyRepositoryFacade = (*CachingCurrencyRepository)(nil)

// NewCachingCurrencyRepository decorates inner with read caching.
func NewCachingCurrencyRepository(
	inner portsrepo.CurrencyRepositoryFacade,
	abbreviationTTL time.Duration,
	idTTL time.Duration,
	idCacheSize int,
	logger *slog.Logger,
) *CachingCurrencyRepository {
	return &CachingCurrencyRepository{
		inner:           inner,
		byAbbreviation:  cache.New[domain.Currency](),
		abbreviationTTL: abbreviationTTL,
		byID:            expirable.NewLRU[string, domain.Currency](idCacheSize, nil, idTTL),
		logger:          logger.With("component", "currency_cache"),
	}
}

// FindCurrencyByID serves the lookup from the LRU when possible.
func (r *CachingCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	if cached, ok := r.byID.Get(currencyID); ok {
		return &cached, nil
	}

	found, err := r.inner.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	r.byID.Add(currencyID, *found)
	return found, nil
}

// FindCurrencyByAbbreviation serves the lookup from the TTL cache when possible.
func (r *CachingCurrencyRepository) FindCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	if cached, ok := r.byAbbreviation.Get(abbreviation); ok {
		return &cached, nil
	}

	found, err := r.inner.FindCurrencyByAbbreviation(ctx, abbreviation)
	if err != nil {
		return nil, err
	}

	r.byAbbreviation.Set(abbreviation, *found, r.abbreviationTTL)
	return found, nil
}

// ListCurrencies always delegates; listing is not on the hot path.
func (r *CachingCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.inner.ListCurrencies(ctx)
}

// SaveCurrency writes through and drops both caches so stale records cannot
// outlive an update.
func (r *CachingCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	if err := r.inner.SaveCurrency(ctx, currency); err != nil {
		return err
	}

	r.byAbbreviation.Delete(currency.Abbreviation)
	r.byID.Purge()
	r.logger.DebugContext(ctx, "currency caches invalidated", "abbreviation", currency.Abbreviation)
	return nil
}
