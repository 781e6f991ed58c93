package repositories

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// ProviderReader defines read operations for provider data.
type ProviderReader interface {
	// FindProviderByID retrieves a provider by its ID.
	FindProviderByID(ctx context.Context, providerID string) (*domain.Provider, error)

	// ListProviders retrieves all available providers.
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}

// ProviderWriter defines write operations for provider data.
type ProviderWriter interface {
	// SaveProvider persists a new provider.
	SaveProvider(ctx context.Context, provider domain.Provider) error
}

// ProviderRepositoryFacade combines all provider-related repository interfaces.
type ProviderRepositoryFacade interface {
	ProviderReader
	ProviderWriter
}
