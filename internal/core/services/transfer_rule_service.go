package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TransferRuleService provides business logic for corridor transfer rules.
type TransferRuleService struct {
	ruleRepo     portsrepo.TransferRuleRepositoryFacade
	providerRepo portsrepo.ProviderReader
	countryRepo  portsrepo.CountryReader
	currencyRepo portsrepo.CurrencyReader
}

// NewTransferRuleService creates a new TransferRuleService.
func NewTransferRuleService(
	ruleRepo portsrepo.TransferRuleRepositoryFacade,
	providerRepo portsrepo.ProviderReader,
	countryRepo portsrepo.CountryReader,
	currencyRepo portsrepo.CurrencyReader,
) *TransferRuleService {
	return &TransferRuleService{
		ruleRepo:     ruleRepo,
		providerRepo: providerRepo,
		countryRepo:  countryRepo,
		currencyRepo: currencyRepo,
	}
}

// CreateTransferRule validates and persists a new corridor rule, returning it
// with its joined entities loaded.
func (s *TransferRuleService) CreateTransferRule(ctx context.Context, req dto.CreateTransferRuleRequest) (*domain.TransferRule, error) {
	if req.FeePercentage.IsNegative() || req.FeePercentage.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: fee percentage must be in [0, 100)", apperrors.ErrValidation)
	}
	if req.FeeFixed != nil && req.FeeFixed.IsNegative() {
		return nil, fmt.Errorf("%w: fixed fee must be non-negative", apperrors.ErrValidation)
	}
	if req.MinTransferAmount.IsNegative() {
		return nil, fmt.Errorf("%w: min transfer amount must be non-negative", apperrors.ErrValidation)
	}
	if req.MaxTransferAmount != nil && req.MaxTransferAmount.LessThan(req.MinTransferAmount) {
		return nil, fmt.Errorf("%w: max transfer amount must be >= min transfer amount", apperrors.ErrValidation)
	}

	minTime, err := time.ParseDuration(req.MinTransferTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid min transfer time: %v", apperrors.ErrValidation, err)
	}
	maxTime, err := time.ParseDuration(req.MaxTransferTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid max transfer time: %v", apperrors.ErrValidation, err)
	}
	if maxTime < minTime {
		return nil, fmt.Errorf("%w: max transfer time must be >= min transfer time", apperrors.ErrValidation)
	}

	provider, err := s.providerRepo.FindProviderByID(ctx, req.ProviderID)
	if err != nil {
		return nil, refValidationErr("provider", req.ProviderID, err)
	}
	sendCountry, err := s.countryRepo.FindCountryByID(ctx, req.SendCountryID)
	if err != nil {
		return nil, refValidationErr("send country", req.SendCountryID, err)
	}
	receiveCountry, err := s.countryRepo.FindCountryByID(ctx, req.ReceiveCountryID)
	if err != nil {
		return nil, refValidationErr("receive country", req.ReceiveCountryID, err)
	}
	transferCurrency, err := s.currencyRepo.FindCurrencyByID(ctx, req.TransferCurrencyID)
	if err != nil {
		return nil, refValidationErr("transfer currency", req.TransferCurrencyID, err)
	}

	now := time.Now()
	documents := make([]domain.Document, len(req.RequiredDocumentIDs))
	for i, docID := range req.RequiredDocumentIDs {
		documents[i] = domain.Document{DocumentID: docID}
	}

	rule := domain.TransferRule{
		RuleID:            uuid.NewString(),
		Provider:          *provider,
		SendCountry:       *sendCountry,
		ReceiveCountry:    *receiveCountry,
		TransferCurrency:  *transferCurrency,
		FeePercentage:     req.FeePercentage,
		FeeFixed:          req.FeeFixed,
		MinTransferAmount: req.MinTransferAmount,
		MaxTransferAmount: req.MaxTransferAmount,
		TransferMethod:    req.TransferMethod,
		MinTransferTime:   minTime,
		MaxTransferTime:   maxTime,
		RequiredDocuments: documents,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ruleRepo.SaveTransferRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create transfer rule in service: %w", err)
	}

	// Re-fetch so the response carries fully loaded documents.
	created, err := s.ruleRepo.FindRuleByID(ctx, rule.RuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created transfer rule: %w", err)
	}
	return created, nil
}

// GetRuleByID retrieves a single rule with its joined entities.
func (s *TransferRuleService) GetRuleByID(ctx context.Context, ruleID string) (*domain.TransferRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer rule in service: %w", err)
	}
	return rule, nil
}

// ListCorridorRules retrieves the active rules for a corridor.
func (s *TransferRuleService) ListCorridorRules(ctx context.Context, sendCountryID, receiveCountryID string) ([]domain.TransferRule, error) {
	rules, err := s.ruleRepo.FindActiveRules(ctx, sendCountryID, receiveCountryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list corridor rules in service: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: corridor %s -> %s", apperrors.ErrNoRulesFound, sendCountryID, receiveCountryID)
	}
	return rules, nil
}

func refValidationErr(kind, id string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s '%s' not found", apperrors.ErrValidation, kind, id)
	}
	return fmt.Errorf("failed to validate %s '%s': %w", kind, id, err)
}
