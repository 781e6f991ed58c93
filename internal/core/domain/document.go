package domain

// Document is a paper a provider requires before accepting a transfer.
type Document struct {
	DocumentID string `json:"documentID"` // Primary Key (UUID)
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
}
