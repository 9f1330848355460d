package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an accounts-payable expense row.
type Expense struct {
	ExpenseID         string          `db:"expense_id"`
	VendorID          string          `db:"vendor_id"`
	Description       string          `db:"description"`
	ExpenseAmount     decimal.Decimal `db:"expense_amount"`
	ServiceCharge     decimal.Decimal `db:"service_charge"`
	WhtRate           decimal.Decimal `db:"wht_rate"`
	WhtAmount         decimal.Decimal `db:"wht_amount"`
	NetPayment        decimal.Decimal `db:"net_payment"`
	Status            string          `db:"status"`
	PaymentStatus     string          `db:"payment_status"`
	ExpenseAccountID  string          `db:"expense_account_id"`
	PaidFromAccountID *string         `db:"paid_from_account_id"`
	PaidDate          *time.Time      `db:"paid_date"`
	ReviewedBy        string          `db:"reviewed_by"`
	AuditFields
}
