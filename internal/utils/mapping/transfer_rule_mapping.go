package mapping

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/models"
)

// ToModelTransferRule flattens a domain rule to its persistence model,
// keeping only foreign keys for the joined entities.
func ToModelTransferRule(d domain.TransferRule) models.TransferRule {
	return models.TransferRule{
		RuleID:             d.RuleID,
		ProviderID:         d.Provider.ProviderID,
		SendCountryID:      d.SendCountry.CountryID,
		ReceiveCountryID:   d.ReceiveCountry.CountryID,
		TransferCurrencyID: d.TransferCurrency.CurrencyID,
		FeePercentage:      d.FeePercentage,
		FeeFixed:           d.FeeFixed,
		MinTransferAmount:  d.MinTransferAmount,
		MaxTransferAmount:  d.MaxTransferAmount,
		TransferMethod:     d.TransferMethod,
		MinTransferTime:    d.MinTransferTime,
		MaxTransferTime:    d.MaxTransferTime,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransferRule assembles a domain rule from its row and the joined
// entities the repository loaded alongside it.
func ToDomainTransferRule(
	m models.TransferRule,
	provider domain.Provider,
	sendCountry, receiveCountry domain.Country,
	transferCurrency domain.Currency,
	documents []domain.Document,
) domain.TransferRule {
	return domain.TransferRule{
		RuleID:            m.RuleID,
		Provider:          provider,
		SendCountry:       sendCountry,
		ReceiveCountry:    receiveCountry,
		TransferCurrency:  transferCurrency,
		FeePercentage:     m.FeePercentage,
		FeeFixed:          m.FeeFixed,
		MinTransferAmount: m.MinTransferAmount,
		MaxTransferAmount: m.MaxTransferAmount,
		TransferMethod:    m.TransferMethod,
		MinTransferTime:   m.MinTransferTime,
		MaxTransferTime:   m.MaxTransferTime,
		RequiredDocuments: documents,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
