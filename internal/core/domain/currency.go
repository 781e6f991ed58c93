package domain

// Currency represents a currency providers can settle transfers in.
type Currency struct {
	CurrencyID   string `json:"currencyID"`   // Primary Key (UUID)
	Abbreviation string `json:"abbreviation"` // Unique 3-letter code, e.g. "USD"
	Name         string `json:"name"`         // e.g. "US Dollar"
	Symbol       string `json:"symbol"`       // e.g. "$"
	IsActive     bool   `json:"isActive"`
	AuditFields
}
