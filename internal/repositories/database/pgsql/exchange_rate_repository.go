package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/internal/models"
	"github.com/movaro/transfer_offers_app/internal/utils/mapping"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, provider_id, from_currency_id, to_currency_id, rate, last_updated, is_active, created_at, last_updated_at`

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID,
		&m.ProviderID,
		&m.FromCurrencyID,
		&m.ToCurrencyID,
		&m.Rate,
		&m.LastUpdated,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveExchangeRate inserts or updates a provider's rate for a directional pair.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, provider_id, from_currency_id, to_currency_id, rate, last_updated, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (provider_id, from_currency_id, to_currency_id) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated = EXCLUDED.last_updated,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.ProviderID,
		m.FromCurrencyID,
		m.ToCurrencyID,
		m.Rate,
		m.LastUpdated,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate for provider %s: %w", m.ProviderID, err)
	}
	return nil
}

// FindRate retrieves the active rate a provider publishes for a directional pair.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, providerID, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE provider_id = $1 AND from_currency_id = $2 AND to_currency_id = $3 AND is_active = TRUE;
	`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, providerID, fromCurrencyID, toCurrencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s->%s for provider %s: %w", fromCurrencyID, toCurrencyID, providerID, err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListRatesByProvider retrieves all active rates one provider publishes.
func (r *PgxExchangeRateRepository) ListRatesByProvider(ctx context.Context, providerID string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE provider_id = $1 AND is_active = TRUE
		ORDER BY from_currency_id, to_currency_id;
	`

	rows, err := r.Pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for provider %s: %w", providerID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates for provider %s: %w", providerID, err)
	}

	rates := make([]domain.ExchangeRate, 0, len(ms))
	for _, m := range ms {
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}
	return rates, nil
}
