package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRule describes one provider's terms for a corridor: the currency the
// provider settles in, its fee policy, admissible amount range, delivery time
// window and required documents. Rules arrive from the repository pre-loaded
// with their provider, countries, transfer currency and documents.
type TransferRule struct {
	RuleID            string           `json:"ruleID"` // Primary Key (UUID)
	Provider          Provider         `json:"provider"`
	SendCountry       Country          `json:"sendCountry"`
	ReceiveCountry    Country          `json:"receiveCountry"`
	TransferCurrency  Currency         `json:"transferCurrency"`
	FeePercentage     decimal.Decimal  `json:"feePercentage"` // 0 <= f < 100
	FeeFixed          *decimal.Decimal `json:"feeFixed,omitempty"`
	MinTransferAmount decimal.Decimal  `json:"minTransferAmount"`
	MaxTransferAmount *decimal.Decimal `json:"maxTransferAmount,omitempty"` // nil means no upper bound
	TransferMethod    string           `json:"transferMethod"`              // Online / Office / etc.
	MinTransferTime   time.Duration    `json:"minTransferTime"`
	MaxTransferTime   time.Duration    `json:"maxTransferTime"`
	RequiredDocuments []Document       `json:"requiredDocuments"`
	IsActive          bool             `json:"isActive"`
	AuditFields
}

// FixedFeeMode reports whether the rule charges a flat fee instead of a
// percentage. Fixed-fee mode applies when FeeFixed is set and FeePercentage
// is zero.
func (r TransferRule) FixedFeeMode() bool {
	return r.FeeFixed != nil && r.FeePercentage.IsZero()
}
