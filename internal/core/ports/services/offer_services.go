package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// OfferSvcFacade evaluates a corridor request into the ordered list of best
// offers, one per provider.
type OfferSvcFacade interface {
	EvaluateCorridor(ctx context.Context, req dto.EvaluateCorridorRequest) ([]domain.Offer, *domain.Currency, error)
}
