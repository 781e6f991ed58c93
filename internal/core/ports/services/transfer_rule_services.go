package services

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/dto"
)

// TransferRuleSvcFacade defines the business operations for transfer rules.
type TransferRuleSvcFacade interface {
	CreateTransferRule(ctx context.Context, req dto.CreateTransferRuleRequest) (*domain.TransferRule, error)
	GetRuleByID(ctx context.Context, ruleID string) (*domain.TransferRule, error)
	ListCorridorRules(ctx context.Context, sendCountryID, receiveCountryID string) ([]domain.TransferRule, error)
}
