package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentApplication represents one immutable settlement row against a bill.
type PaymentApplication struct {
	ApplicationID string          `db:"application_id"`
	BillID        string          `db:"bill_id"`
	EntryID       string          `db:"entry_id"`
	AmountApplied decimal.Decimal `db:"amount_applied"`
	Source        string          `db:"source"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	PaymentDate   time.Time       `db:"payment_date"`
	AppliedBy     string          `db:"applied_by"`
	AppliedAt     time.Time       `db:"applied_at"`
	Notes         string          `db:"notes"`
}
