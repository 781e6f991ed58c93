package mapping

import (
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/models"
)

// ToModelDocument converts a domain document to its persistence model.
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID: d.DocumentID,
		Name:       d.Name,
		IsActive:   d.IsActive,
	}
}

// ToDomainDocument converts a persistence model to a domain document.
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID: m.DocumentID,
		Name:       m.Name,
		IsActive:   m.IsActive,
	}
}
