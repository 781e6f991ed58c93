package models

// Currency represents a supported currency row.
type Currency struct {
	CurrencyID   string `json:"currencyID"` // Primary Key (UUID)
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
