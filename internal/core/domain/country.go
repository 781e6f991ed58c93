package domain

// Country identifies one end of a transfer corridor.
type Country struct {
	CountryID       string `json:"countryID"` // Primary Key (UUID)
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"` // 3-letter code, e.g. "USA"
	LocalCurrencyID string `json:"localCurrencyID"`
	IsActive        bool   `json:"isActive"`
	AuditFields
}
