package models

// Provider represents a transfer provider row.
type Provider struct {
	ProviderID string `json:"providerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	URL        string `json:"url"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
