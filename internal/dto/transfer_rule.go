package dto

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRuleRequest defines the data needed to create a transfer rule.
// Transfer time bounds are duration strings, e.g. "24h" or "30m".
type CreateTransferRuleRequest struct {
	ProviderID          string           `json:"providerID" binding:"required,uuid"`
	SendCountryID       string           `json:"sendCountryID" binding:"required,uuid"`
	ReceiveCountryID    string           `json:"receiveCountryID" binding:"required,uuid"`
	TransferCurrencyID  string           `json:"transferCurrencyID" binding:"required,uuid"`
	FeePercentage       decimal.Decimal  `json:"feePercentage"`
	FeeFixed            *decimal.Decimal `json:"feeFixed,omitempty"`
	MinTransferAmount   decimal.Decimal  `json:"minTransferAmount"`
	MaxTransferAmount   *decimal.Decimal `json:"maxTransferAmount,omitempty"`
	TransferMethod      string           `json:"transferMethod" binding:"required"`
	MinTransferTime     string           `json:"minTransferTime" binding:"required,duration"`
	MaxTransferTime     string           `json:"maxTransferTime" binding:"required,duration"`
	RequiredDocumentIDs []string         `json:"requiredDocumentIDs" binding:"omitempty,dive,uuid"`
}

// DocumentResponse defines the data returned for a required document.
type DocumentResponse struct {
	DocumentID string `json:"documentID"`
	Name       string `json:"name"`
}

// TransferRuleResponse defines the data returned for a transfer rule.
type TransferRuleResponse struct {
	RuleID            string             `json:"ruleID"`
	Provider          ProviderResponse   `json:"provider"`
	SendCountry       CountryResponse    `json:"sendCountry"`
	ReceiveCountry    CountryResponse    `json:"receiveCountry"`
	TransferCurrency  CurrencyResponse   `json:"transferCurrency"`
	FeePercentage     decimal.Decimal    `json:"feePercentage"`
	FeeFixed          *decimal.Decimal   `json:"feeFixed,omitempty"`
	MinTransferAmount decimal.Decimal    `json:"minTransferAmount"`
	MaxTransferAmount *decimal.Decimal   `json:"maxTransferAmount,omitempty"`
	TransferMethod    string             `json:"transferMethod"`
	MinTransferTime   string             `json:"minTransferTime"`
	MaxTransferTime   string             `json:"maxTransferTime"`
	RequiredDocuments []DocumentResponse `json:"requiredDocuments"`
	IsActive          bool               `json:"isActive"`
}

// ToDocumentResponseSlice converts domain documents to DTOs.
func ToDocumentResponseSlice(docs []domain.Document) []DocumentResponse {
	resp := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		resp[i] = DocumentResponse{DocumentID: d.DocumentID, Name: d.Name}
	}
	return resp
}

// ToTransferRuleResponse converts a domain.TransferRule to its DTO.
func ToTransferRuleResponse(r *domain.TransferRule) TransferRuleResponse {
	return TransferRuleResponse{
		RuleID:            r.RuleID,
		Provider:          ToProviderResponse(&r.Provider),
		SendCountry:       ToCountryResponse(&r.SendCountry),
		ReceiveCountry:    ToCountryResponse(&r.ReceiveCountry),
		TransferCurrency:  ToCurrencyResponse(&r.TransferCurrency),
		FeePercentage:     r.FeePercentage,
		FeeFixed:          r.FeeFixed,
		MinTransferAmount: r.MinTransferAmount,
		MaxTransferAmount: r.MaxTransferAmount,
		TransferMethod:    r.TransferMethod,
		MinTransferTime:   r.MinTransferTime.String(),
		MaxTransferTime:   r.MaxTransferTime.String(),
		RequiredDocuments: ToDocumentResponseSlice(r.RequiredDocuments),
		IsActive:          r.IsActive,
	}
}

// ToTransferRuleResponseSlice converts a slice of domain transfer rules.
func ToTransferRuleResponseSlice(rs []domain.TransferRule) []TransferRuleResponse {
	resp := make([]TransferRuleResponse, len(rs))
	for i := range rs {
		resp[i] = ToTransferRuleResponse(&rs[i])
	}
	return resp
}
