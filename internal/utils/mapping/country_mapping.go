package mapping

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/models"
)

// ToModelCountry converts a domain country to its persistence model.
func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		CountryID:       d.CountryID,
		Name:            d.Name,
		Abbreviation:    d.Abbreviation,
		LocalCurrencyID: d.LocalCurrencyID,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCountry converts a persistence model to a domain country.
func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		CountryID:       m.CountryID,
		Name:            m.Name,
		Abbreviation:    m.Abbreviation,
		LocalCurrencyID: m.LocalCurrencyID,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCountrySlice converts a slice of country models.
func ToDomainCountrySlice(ms []models.Country) []domain.Country {
	ds := make([]domain.Country, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCountry(m)
	}
	return ds
}
