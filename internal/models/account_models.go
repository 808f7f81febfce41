package models

import "errors"

// AccountType enumerates the supported account kinds.
type AccountType string

const (
	AccountTypeCurrent AccountType = "Current"
	AccountTypeSavings AccountType = "Savings"
	AccountTypeAccrual AccountType = "Accrual"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	return t == AccountTypeCurrent || t == AccountTypeSavings || t == AccountTypeAccrual
}

// Currency enumerates the supported account currencies.
type Currency string

const (
	CurrencyGEL Currency = "GEL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether c is one of the known currencies.
func (c Currency) Valid() bool {
	return c == CurrencyGEL || c == CurrencyUSD || c == CurrencyEUR
}

// AccountStatus enumerates account states. The only transition is
// Active -> Closed.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "Active"
	AccountStatusClosed AccountStatus = "Closed"
)

// ErrAccountAlreadyClosed is returned by Close on an already closed account.
var ErrAccountAlreadyClosed = errors.New("account is already closed")

// Account is a financial sub-resource owned by exactly one client. Accounts
// are created through the client-scoped operation and removed only when the
// owning client is deleted.
type Account struct {
	ID       int64         `json:"id" db:"id"`
	ClientID int64         `json:"client_id" db:"client_id"`
	Type     AccountType   `json:"type" db:"type"`
	Currency Currency      `json:"currency" db:"currency"`
	Status   AccountStatus `json:"status" db:"status"`
}

// Close transitions the account to Closed. Closing an already closed account
// is an error, not a no-op.
func (a *Account) Close() error {
	if a.Status == AccountStatusClosed {
		return ErrAccountAlreadyClosed
	}
	a.Status = AccountStatusClosed
	return nil
}
