package dto

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EvaluateCorridorRequest carries the corridor query. Currency and amount are
// optional, but an amount without a source currency is rejected.
type EvaluateCorridorRequest struct {
	SendCountryID    string   `form:"send_country_id" binding:"required,uuid"`
	ReceiveCountryID string   `form:"receive_country_id" binding:"required,uuid"`
	FromCurrencyID   string   `form:"from_currency_id" binding:"omitempty,uuid"`
	Amount           *float64 `form:"amount" binding:"omitempty,gt=0"`
}

// OfferResponse is one evaluated provider offer. Monetary fields are rounded
// to 2 decimal places, the rate to 4 for display.
type OfferResponse struct {
	RuleID                 string             `json:"ruleID"`
	Provider               ProviderResponse   `json:"provider"`
	TransferCurrency       CurrencyResponse   `json:"transferCurrency"`
	TransferMethod         string             `json:"transferMethod"`
	MinTransferTime        string             `json:"minTransferTime"`
	MaxTransferTime        string             `json:"maxTransferTime"`
	RequiredDocuments      []DocumentResponse `json:"requiredDocuments"`
	MinTransferAmount      decimal.Decimal    `json:"minTransferAmount"`
	MaxTransferAmount      *decimal.Decimal   `json:"maxTransferAmount,omitempty"`
	FeePercentage          decimal.Decimal    `json:"feePercentage"`
	OriginalAmount         *decimal.Decimal   `json:"originalAmount,omitempty"`
	ConvertedAmount        *decimal.Decimal   `json:"convertedAmount,omitempty"`
	TransferFee            *decimal.Decimal   `json:"transferFee,omitempty"`
	AmountReceived         *decimal.Decimal   `json:"amountReceived,omitempty"`
	EffectiveFeePercentage *decimal.Decimal   `json:"effectiveFeePercentage,omitempty"`
	ExchangeRate           *decimal.Decimal   `json:"exchangeRate,omitempty"`
	ConversionPath         []string           `json:"conversionPath"`
}

// CorridorOffersResponse wraps the ordered best-offer-per-provider list.
type CorridorOffersResponse struct {
	SendCountryID    string            `json:"sendCountryID"`
	ReceiveCountryID string            `json:"receiveCountryID"`
	FromCurrency     *CurrencyResponse `json:"fromCurrency,omitempty"`
	Offers           []OfferResponse   `json:"offers"`
}

// ToOfferResponse converts a domain.Offer to its DTO.
func ToOfferResponse(o *domain.Offer) OfferResponse {
	resp := OfferResponse{
		RuleID:            o.RuleID,
		Provider:          ToProviderResponse(&o.Provider),
		TransferCurrency:  ToCurrencyResponse(&o.TransferCurrency),
		TransferMethod:    o.TransferMethod,
		MinTransferTime:   o.MinTransferTime.String(),
		MaxTransferTime:   o.MaxTransferTime.String(),
		RequiredDocuments: ToDocumentResponseSlice(o.RequiredDocuments),
		MinTransferAmount: o.MinTransferAmount,
		MaxTransferAmount: o.MaxTransferAmount,
		FeePercentage:     o.FeePercentage,
		OriginalAmount:    o.OriginalAmount,
		ConvertedAmount:   o.ConvertedAmount,
		TransferFee:       o.TransferFee,
		AmountReceived:    o.AmountReceived,
		ConversionPath:    o.ConversionPath,
	}
	if o.EffectiveFeePercentage != nil {
		eff := o.EffectiveFeePercentage.Round(2)
		resp.EffectiveFeePercentage = &eff
	}
	if o.ExchangeRate != nil {
		rate := o.ExchangeRate.Round(4)
		resp.ExchangeRate = &rate
	}
	return resp
}

// ToOfferResponseSlice converts a slice of domain offers.
func ToOfferResponseSlice(os []domain.Offer) []OfferResponse {
	resp := make([]OfferResponse, len(os))
	for i := range os {
		resp[i] = ToOfferResponse(&os[i])
	}
	return resp
}
