package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillPaymentStatus tracks how much of a bill has been settled.
// Always derived from Amount and TotalPaid, never accepted from a caller.
type BillPaymentStatus string

const (
	BillUnpaid  BillPaymentStatus = "UNPAID"
	BillPartial BillPaymentStatus = "PARTIAL"
	BillPaid    BillPaymentStatus = "PAID"
)

// Bill is an accounts-receivable invoice issued to a resident.
// Bills are never deleted; settlement happens only through payment
// applications.
type Bill struct {
	BillID        string            `json:"billID"`        // Primary key (UUID)
	ResidentID    string            `json:"residentID"`    // Owning resident (external identity)
	InvoiceNumber string            `json:"invoiceNumber"` // Unique, used for reconciliation matching
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	TotalPaid     decimal.Decimal   `json:"totalPaid"`
	Balance       decimal.Decimal   `json:"balance"` // Amount - TotalPaid
	PaymentStatus BillPaymentStatus `json:"paymentStatus"`
	DueDate       time.Time         `json:"dueDate"`
	AuditFields
}

// DeriveBillStatus computes the payment status from the outstanding balance.
func DeriveBillStatus(amount, totalPaid decimal.Decimal) BillPaymentStatus {
	switch {
	case totalPaid.IsZero():
		return BillUnpaid
	case totalPaid.GreaterThanOrEqual(amount):
		return BillPaid
	default:
		return BillPartial
	}
}
