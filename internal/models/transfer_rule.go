package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRule stores one provider's corridor terms. Transfer time bounds are
// stored as whole seconds and surfaced as durations.
type TransferRule struct {
	RuleID             string           `json:"ruleID"` // Primary Key (UUID)
	ProviderID         string           `json:"providerID"`
	SendCountryID      string           `json:"sendCountryID"`
	ReceiveCountryID   string           `json:"receiveCountryID"`
	TransferCurrencyID string           `json:"transferCurrencyID"`
	FeePercentage      decimal.Decimal  `json:"feePercentage"`
	FeeFixed           *decimal.Decimal `json:"feeFixed,omitempty"`
	MinTransferAmount  decimal.Decimal  `json:"minTransferAmount"`
	MaxTransferAmount  *decimal.Decimal `json:"maxTransferAmount,omitempty"`
	TransferMethod     string           `json:"transferMethod"`
	MinTransferTime    time.Duration    `json:"minTransferTime"`
	MaxTransferTime    time.Duration    `json:"maxTransferTime"`
	IsActive           bool             `json:"isActive"`
	AuditFields
}
