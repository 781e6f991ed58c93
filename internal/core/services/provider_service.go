package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// ProviderService provides business logic for transfer providers.
type ProviderService struct {
	providerRepo portsrepo.ProviderRepositoryFacade
}

// NewProviderService creates a new ProviderService.
func NewProviderService(providerRepo portsrepo.ProviderRepositoryFacade) *ProviderService {
	return &ProviderService{providerRepo: providerRepo}
}

// CreateProvider handles the creation of a new provider.
func (s *ProviderService) CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*domain.Provider, error) {
	now := time.Now()
	provider := domain.Provider{
		ProviderID: uuid.NewString(),
		Name:       req.Name,
		URL:        req.URL,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.providerRepo.SaveProvider(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to create provider in service: %w", err)
	}

	return &provider, nil
}

// GetProviderByID retrieves a provider by its ID.
func (s *ProviderService) GetProviderByID(ctx context.Context, providerID string) (*domain.Provider, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider by id in service: %w", err)
	}
	return provider, nil
}

// ListProviders retrieves all providers.
func (s *ProviderService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	providers, err := s.providerRepo.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers in service: %w", err)
	}
	if providers == nil {
		return []domain.Provider{}, nil
	}
	return providers, nil
}
