package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// ProviderSvcFacade defines the business operations for providers.
type ProviderSvcFacade interface {
	CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*domain.Provider, error)
	GetProviderByID(ctx context.Context, providerID string) (*domain.Provider, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}
