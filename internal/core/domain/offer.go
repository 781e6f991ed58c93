package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rank buckets order offers before fee comparison: an offer whose funds stay
// in the requested currency outranks any offer that needed a conversion,
// because currency-mismatch offers carry rate risk not captured by fee alone.
const (
	RankNoConversion = 1
	RankConverted    = 2
)

// Offer is the evaluated result of one transfer rule against a specific
// request. Offers are derived per request and never persisted.
type Offer struct {
	RuleID                 string           `json:"ruleID"`
	Provider               Provider         `json:"provider"`
	TransferCurrency       Currency         `json:"transferCurrency"`
	TransferMethod         string           `json:"transferMethod"`
	MinTransferTime        time.Duration    `json:"minTransferTime"`
	MaxTransferTime        time.Duration    `json:"maxTransferTime"`
	RequiredDocuments      []Document       `json:"requiredDocuments"`
	MinTransferAmount      decimal.Decimal  `json:"minTransferAmount"`
	MaxTransferAmount      *decimal.Decimal `json:"maxTransferAmount,omitempty"`
	FeePercentage          decimal.Decimal  `json:"feePercentage"` // Nominal, from the rule
	OriginalAmount         *decimal.Decimal `json:"originalAmount,omitempty"`
	ConvertedAmount        *decimal.Decimal `json:"convertedAmount,omitempty"`
	TransferFee            *decimal.Decimal `json:"transferFee,omitempty"`
	AmountReceived         *decimal.Decimal `json:"amountReceived,omitempty"`
	EffectiveFeePercentage *decimal.Decimal `json:"effectiveFeePercentage,omitempty"`
	ExchangeRate           *decimal.Decimal `json:"exchangeRate,omitempty"`
	ConversionPath         []string         `json:"conversionPath"`
	RankBucket             int              `json:"-"`
}
