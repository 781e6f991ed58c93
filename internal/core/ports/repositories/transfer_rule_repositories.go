package repositories

import (
	"context"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
)

// TransferRuleReader defines read operations for transfer rule data.
type TransferRuleReader interface {
	// FindActiveRules retrieves the active rules for a corridor, each pre-loaded
	// with its provider, countries, transfer currency and required documents.
	// Only rules whose provider, countries and currency are themselves active
	// are returned. An empty slice means the corridor has no rules.
	FindActiveRules(ctx context.Context, sendCountryID, receiveCountryID string) ([]domain.TransferRule, error)

	// FindRuleByID retrieves a single rule with its joined entities.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.TransferRule, error)
}

// TransferRuleWriter defines write operations for transfer rule data.
type TransferRuleWriter interface {
	// SaveTransferRule persists a new transfer rule and its document links.
	SaveTransferRule(ctx context.Context, rule domain.TransferRule) error
}

// TransferRuleRepositoryFacade combines all transfer rule-related repository interfaces.
type TransferRuleRepositoryFacade interface {
	TransferRuleReader
	TransferRuleWriter
}
