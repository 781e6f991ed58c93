package mapping

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/models"
)

// ToModelCurrency converts a domain currency to its persistence model.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:   d.CurrencyID,
		Abbreviation: d.Abbreviation,
		Name:         d.Name,
		Symbol:       d.Symbol,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a persistence model to a domain currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:   m.CurrencyID,
		Abbreviation: m.Abbreviation,
		Name:         m.Name,
		Symbol:       m.Symbol,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of currency models.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
