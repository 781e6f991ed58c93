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

type PgxCountryRepository struct {
	BaseRepository
}

// newPgxCountryRepository creates a new repository for country data.
func newPgxCountryRepository(pool *pgxpool.Pool) portsrepo.CountryRepositoryFacade {
	return &PgxCountryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

const countryColumns = `country_id, name, abbreviation, local_currency_id, is_active, created_at, last_updated_at`

func scanCountry(row pgx.Row) (models.Country, error) {
	var m models.Country
	err := row.Scan(
		&m.CountryID,
		&m.Name,
		&m.Abbreviation,
		&m.LocalCurrencyID,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveCountry inserts or updates a country.
func (r *PgxCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)

	query := `
		INSERT INTO countries (country_id, name, abbreviation, local_currency_id, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (country_id) DO UPDATE SET
			name = EXCLUDED.name,
			abbreviation = EXCLUDED.abbreviation,
			local_currency_id = EXCLUDED.local_currency_id,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.CountryID,
		m.Name,
		m.Abbreviation,
		m.LocalCurrencyID,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save country %s: %w", m.Name, err)
	}
	return nil
}

// FindCountryByID retrieves a country by its ID.
func (r *PgxCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE country_id = $1;`

	m, err := scanCountry(r.Pool.QueryRow(ctx, query, countryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country by id %s: %w", countryID, err)
	}

	d := mapping.ToDomainCountry(m)
	return &d, nil
}

// ListCountries retrieves all countries.
func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Country, error) {
		return scanCountry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}

	return mapping.ToDomainCountrySlice(ms), nil
}
