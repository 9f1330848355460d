package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a chart-of-accounts row as stored in PostgreSQL.
type Account struct {
	AccountID       string          `db:"account_id"`
	AccountNumber   string          `db:"account_number"`
	AccountName     string          `db:"account_name"`
	AccountType     string          `db:"account_type"`
	NormalBalance   string          `db:"normal_balance"`
	Description     string          `db:"description"`
	IsSystemAccount bool            `db:"is_system_account"`
	IsActive        bool            `db:"is_active"`
	AuditFields
	Balance decimal.Decimal `db:"balance"`
}
