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

type PgxProviderRepository struct {
	BaseRepository
}

// newPgxProviderRepository creates a new repository for provider data.
func newPgxProviderRepository(pool *pgxpool.Pool) portsrepo.ProviderRepositoryFacade {
	return &PgxProviderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProviderRepositoryFacade = (*PgxProviderRepository)(nil)

const providerColumns = `provider_id, name, url, is_active, created_at, last_updated_at`

func scanProvider(row pgx.Row) (models.Provider, error) {
	var m models.Provider
	err := row.Scan(
		&m.ProviderID,
		&m.Name,
		&m.URL,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveProvider inserts or updates a provider.
func (r *PgxProviderRepository) SaveProvider(ctx context.Context, provider domain.Provider) error {
	m := mapping.ToModelProvider(provider)

	query := `
		INSERT INTO providers (provider_id, name, url, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (provider_id) DO UPDATE SET
			name = EXCLUDED.name,
			url = EXCLUDED.url,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ProviderID,
		m.Name,
		m.URL,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save provider %s: %w", m.Name, err)
	}
	return nil
}

// FindProviderByID retrieves a provider by its ID.
func (r *PgxProviderRepository) FindProviderByID(ctx context.Context, providerID string) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE provider_id = $1;`

	m, err := scanProvider(r.Pool.QueryRow(ctx, query, providerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider by id %s: %w", providerID, err)
	}

	d := mapping.ToDomainProvider(m)
	return &d, nil
}

// ListProviders retrieves all providers.
func (r *PgxProviderRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Provider, error) {
		return scanProvider(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan providers: %w", err)
	}

	return mapping.ToDomainProviderSlice(ms), nil
}
