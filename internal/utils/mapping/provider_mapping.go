package mapping

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/models"
)

// ToModelProvider converts a domain provider to its persistence model.
func ToModelProvider(d domain.Provider) models.Provider {
	return models.Provider{
		ProviderID:  d.ProviderID,
		Name:        d.Name,
		URL:         d.URL,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProvider converts a persistence model to a domain provider.
func ToDomainProvider(m models.Provider) domain.Provider {
	return domain.Provider{
		ProviderID:  m.ProviderID,
		Name:        m.Name,
		URL:         m.URL,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProviderSlice converts a slice of provider models.
func ToDomainProviderSlice(ms []models.Provider) []domain.Provider {
	ds := make([]domain.Provider, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProvider(m)
	}
	return ds
}
