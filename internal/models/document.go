package models

// Document represents a required-document row.
type Document struct {
	DocumentID string `json:"documentID"` // Primary Key (UUID)
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
