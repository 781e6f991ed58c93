package domain

// Provider is a money-transfer operator publishing rules and exchange rates.
type Provider struct {
	ProviderID string `json:"providerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	URL        string `json:"url"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
