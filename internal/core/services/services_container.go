package services

import (
	"log/slog"

	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	portssvc "github.com/movaro/transfer_offers_app/internal/core/ports/services"
	"github.com/movaro/transfer_offers_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. The currency reader passed in repos is expected to be the
// caching decorator, so conversion and offer evaluation hit the cache instead
// of the database for hot currency lookups.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Country = NewCountryService(repos.CountryRepo, repos.CurrencyRepo)
	container.Provider = NewProviderService(repos.ProviderRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.TransferRule = NewTransferRuleService(repos.TransferRuleRepo, repos.ProviderRepo, repos.CountryRepo, repos.CurrencyRepo)

	conversion := NewConversionService(repos.CurrencyRepo, repos.ExchangeRateRepo, cfg.PivotCurrency, logger)
	container.Offer = NewOfferService(repos.TransferRuleRepo, repos.CurrencyRepo, conversion, logger)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.CountrySvcFacade      = (*CountryService)(nil)
	_ portssvc.ProviderSvcFacade     = (*ProviderService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.TransferRuleSvcFacade = (*TransferRuleService)(nil)
	_ portssvc.ConversionSvcFacade   = (*ConversionService)(nil)
	_ portssvc.OfferSvcFacade        = (*OfferService)(nil)
)
