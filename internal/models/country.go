package models

// Country represents a country row.
type Country struct {
	CountryID       string `json:"countryID"` // Primary Key (UUID)
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	LocalCurrencyID string `json:"localCurrencyID"` // FK -> currencies.currency_id
	IsActive        bool   `json:"isActive"`
	AuditFields
}
