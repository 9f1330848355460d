package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	ExpenseType   AccountType = "EXPENSE"
)

// NormalBalance indicates which side of the ledger increases an account.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// Account represents one node of the chart of accounts.
// NormalBalance is always derived from AccountType and never caller-supplied.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary key (UUID)
	AccountNumber   string          `json:"accountNumber"`   // Unique, human-assigned (e.g. "1200")
	AccountName     string          `json:"accountName"`     // Display name
	AccountType     AccountType     `json:"accountType"`     // ASSET, LIABILITY, etc.
	NormalBalance   NormalBalance   `json:"normalBalance"`   // Derived from AccountType
	Description     string          `json:"description"`     // Nullable user description
	IsSystemAccount bool            `json:"isSystemAccount"` // Seeded accounts; protected from deletion
	IsActive        bool            `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"` // Persisted balance over posted, non-void entries
}

// NormalBalanceFor derives the normal balance side for an account type.
// Assets and expenses increase on the debit side; liabilities, equity and
// revenue increase on the credit side.
func NormalBalanceFor(accountType AccountType) NormalBalance {
	switch accountType {
	case Asset, ExpenseType:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// ValidAccountType reports whether t is one of the five recognised types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, ExpenseType:
		return true
	}
	return false
}
