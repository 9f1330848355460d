package dto

import (
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a vendor expense.
// WhtAmount and NetPayment are always computed server-side.
type CreateExpenseRequest struct {
	VendorID         string          `json:"vendorID" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	ExpenseAmount    decimal.Decimal `json:"expenseAmount" binding:"required"`
	ServiceCharge    decimal.Decimal `json:"serviceCharge"`    // Optional; zero when absent
	ExpenseAccountID string          `json:"expenseAccountID"` // Optional; defaults to the general expense account
}

// PayExpenseRequest defines the data needed to pay an approved expense now.
type PayExpenseRequest struct {
	BankAccountID string          `json:"bankAccountID" binding:"required"`
	WhtRate       decimal.Decimal `json:"whtRate"`
	PaymentDate   *time.Time      `json:"paymentDate"` // Optional; defaults to now
}

// DeferExpensePaymentRequest approves an expense for later payment.
type DeferExpensePaymentRequest struct {
	WhtRate decimal.Decimal `json:"whtRate"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID         string                      `json:"expenseID"`
	VendorID          string                      `json:"vendorID"`
	Description       string                      `json:"description"`
	ExpenseAmount     decimal.Decimal             `json:"expenseAmount"`
	ServiceCharge     decimal.Decimal             `json:"serviceCharge"`
	WhtRate           decimal.Decimal             `json:"whtRate"`
	WhtAmount         decimal.Decimal             `json:"whtAmount"`
	NetPayment        decimal.Decimal             `json:"netPayment"`
	Status            domain.ExpenseStatus        `json:"status"`
	PaymentStatus     domain.ExpensePaymentStatus `json:"paymentStatus"`
	ExpenseAccountID  string                      `json:"expenseAccountID"`
	PaidFromAccountID *string                     `json:"paidFromAccountID,omitempty"`
	PaidDate          *time.Time                  `json:"paidDate,omitempty"`
	ReviewedBy        string                      `json:"reviewedBy,omitempty"`
	CreatedAt         time.Time                   `json:"createdAt"`
	CreatedBy         string                      `json:"createdBy"`
}

// ListExpensesParams holds parameters for listing expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:         e.ExpenseID,
		VendorID:          e.VendorID,
		Description:       e.Description,
		ExpenseAmount:     e.ExpenseAmount,
		ServiceCharge:     e.ServiceCharge,
		WhtRate:           e.WhtRate,
		WhtAmount:         e.WhtAmount,
		NetPayment:        e.NetPayment,
		Status:            e.Status,
		PaymentStatus:     e.PaymentStatus,
		ExpenseAccountID:  e.ExpenseAccountID,
		PaidFromAccountID: e.PaidFromAccountID,
		PaidDate:          e.PaidDate,
		ReviewedBy:        e.ReviewedBy,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ToExpenseResponses converts a slice of domain expenses to response DTOs.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
