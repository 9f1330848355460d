package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents an accounts-receivable invoice row.
type Bill struct {
	BillID        string          `db:"bill_id"`
	ResidentID    string          `db:"resident_id"`
	InvoiceNumber string          `db:"invoice_number"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	TotalPaid     decimal.Decimal `db:"total_paid"`
	Balance       decimal.Decimal `db:"balance"`
	PaymentStatus string          `db:"payment_status"`
	DueDate       time.Time       `db:"due_date"`
	AuditFields
}
