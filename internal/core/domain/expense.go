package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks the review lifecycle of a vendor expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "PENDING"
	ExpenseApproved ExpenseStatus = "APPROVED"
	ExpenseRejected ExpenseStatus = "REJECTED"
)

// ExpensePaymentStatus tracks the settlement state of an approved expense.
type ExpensePaymentStatus string

const (
	ExpenseUnpaid              ExpensePaymentStatus = "UNPAID"
	ExpenseApprovedForPayment  ExpensePaymentStatus = "APPROVED_FOR_PAYMENT"
	ExpensePaymentSettled      ExpensePaymentStatus = "PAID"
)

// Expense is an accounts-payable obligation to a vendor. Withholding tax is
// levied on the service-charge portion only; NetPayment and WhtAmount are
// derived server-side and never accepted from a caller.
type Expense struct {
	ExpenseID         string               `json:"expenseID"`  // Primary key (UUID)
	VendorID          string               `json:"vendorID"`   // External vendor identity
	Description       string               `json:"description"`
	ExpenseAmount     decimal.Decimal      `json:"expenseAmount"`
	ServiceCharge     decimal.Decimal      `json:"serviceCharge"` // Zero when no service component
	WhtRate           decimal.Decimal      `json:"whtRate"`       // Percentage, 0..100
	WhtAmount         decimal.Decimal      `json:"whtAmount"`
	NetPayment        decimal.Decimal      `json:"netPayment"`
	Status            ExpenseStatus        `json:"status"`
	PaymentStatus     ExpensePaymentStatus `json:"paymentStatus"`
	ExpenseAccountID  string               `json:"expenseAccountID"`  // GL expense account charged
	PaidFromAccountID *string              `json:"paidFromAccountID"` // Bank account, set when paid
	PaidDate          *time.Time           `json:"paidDate"`
	ReviewedBy        string               `json:"reviewedBy"` // Set on approve/decline
	AuditFields
}
