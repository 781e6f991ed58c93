package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories into the container
// the service layer consumes.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(pool),
		CountryRepo:      newPgxCountryRepository(pool),
		ProviderRepo:     newPgxProviderRepository(pool),
		ExchangeRateRepo: newPgxExchangeRateRepository(pool),
		TransferRuleRepo: newPgxTransferRuleRepository(pool),
	}
}
