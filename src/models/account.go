package models

// Account mirrors a row of the Accounts table. Balance is in minor currency
// units. Deleted is never reported by the bank: it is inferred when an
// account disappears from a snapshot.
type Account struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	AccountType   string `json:"account_type"`
	OwnershipType string `json:"ownership_type"`
	Balance       int64  `json:"balance"`
	Created       string `json:"created"`
	Deleted       bool   `json:"deleted"`
}
