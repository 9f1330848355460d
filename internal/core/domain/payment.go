package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSource distinguishes how a payment application was captured.
type PaymentSource string

const (
	SourceBankStatement PaymentSource = "BANK_STATEMENT"
	SourceManual        PaymentSource = "MANUAL"
)

// PaymentApplication records one settlement event against a bill.
// Applications are immutable once created.
type PaymentApplication struct {
	ApplicationID string          `json:"applicationID"` // Primary key (UUID)
	BillID        string          `json:"billID"`
	EntryID       string          `json:"entryID"` // Journal entry produced by this application
	AmountApplied decimal.Decimal `json:"amountApplied"`
	Source        PaymentSource   `json:"source"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	PaymentDate   time.Time       `json:"paymentDate"`
	AppliedBy     string          `json:"appliedBy"`
	AppliedAt     time.Time       `json:"appliedAt"`
	Notes         string          `json:"notes"`
}
