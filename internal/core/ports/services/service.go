package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	Country      CountrySvcFacade
	Provider     ProviderSvcFacade
	ExchangeRate ExchangeRateSvcFacade
	TransferRule TransferRuleSvcFacade
	Offer        OfferSvcFacade
}
