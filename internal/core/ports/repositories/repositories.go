package repositories

// RepositoryProvider bundles the repositories the service layer is wired with.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryFacade
	CountryRepo      CountryRepositoryFacade
	ProviderRepo     ProviderRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	TransferRuleRepo TransferRuleRepositoryFacade
}
