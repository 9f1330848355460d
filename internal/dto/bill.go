package dto

import (
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to issue a new resident bill.
type CreateBillRequest struct {
	ResidentID    string          `json:"residentID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DueDate       time.Time       `json:"dueDate" binding:"required"`
}

// RecordPaymentRequest defines the data needed to apply a payment to a bill.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Source        domain.PaymentSource `json:"source" binding:"omitempty,oneof=BANK_STATEMENT MANUAL"`
	BankName      string               `json:"bankName"`
	AccountNumber string               `json:"accountNumber"`
	PaymentDate   time.Time            `json:"paymentDate" binding:"required"`
	Notes         string               `json:"notes"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID        string                   `json:"billID"`
	ResidentID    string                   `json:"residentID"`
	InvoiceNumber string                   `json:"invoiceNumber"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	TotalPaid     decimal.Decimal          `json:"totalPaid"`
	Balance       decimal.Decimal          `json:"balance"`
	PaymentStatus domain.BillPaymentStatus `json:"paymentStatus"`
	DueDate       time.Time                `json:"dueDate"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
}

// PaymentApplicationResponse defines the data returned for a settlement event.
type PaymentApplicationResponse struct {
	ApplicationID string               `json:"applicationID"`
	BillID        string               `json:"billID"`
	EntryID       string               `json:"entryID"`
	AmountApplied decimal.Decimal      `json:"amountApplied"`
	Source        domain.PaymentSource `json:"source"`
	BankName      string               `json:"bankName"`
	AccountNumber string               `json:"accountNumber"`
	PaymentDate   time.Time            `json:"paymentDate"`
	AppliedBy     string               `json:"appliedBy"`
	AppliedAt     time.Time            `json:"appliedAt"`
	Notes         string               `json:"notes"`
}

// ListBillsParams holds parameters for listing bills.
type ListBillsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListBillsResponse wraps a page of bills.
type ListBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO
func ToBillResponse(bill *domain.Bill) BillResponse {
	return BillResponse{
		BillID:        bill.BillID,
		ResidentID:    bill.ResidentID,
		InvoiceNumber: bill.InvoiceNumber,
		Description:   bill.Description,
		Amount:        bill.Amount,
		TotalPaid:     bill.TotalPaid,
		Balance:       bill.Balance,
		PaymentStatus: bill.PaymentStatus,
		DueDate:       bill.DueDate,
		CreatedAt:     bill.CreatedAt,
		CreatedBy:     bill.CreatedBy,
	}
}

// ToBillResponses converts a slice of domain bills to response DTOs.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	responses := make([]BillResponse, len(bills))
	for i := range bills {
		responses[i] = ToBillResponse(&bills[i])
	}
	return responses
}

// ToPaymentApplicationResponse converts a domain application to its DTO.
func ToPaymentApplicationResponse(app *domain.PaymentApplication) PaymentApplicationResponse {
	return PaymentApplicationResponse{
		ApplicationID: app.ApplicationID,
		BillID:        app.BillID,
		EntryID:       app.EntryID,
		AmountApplied: app.AmountApplied,
		Source:        app.Source,
		BankName:      app.BankName,
		AccountNumber: app.AccountNumber,
		PaymentDate:   app.PaymentDate,
		AppliedBy:     app.AppliedBy,
		AppliedAt:     app.AppliedAt,
		Notes:         app.Notes,
	}
}

// ToPaymentApplicationResponses converts domain applications to DTOs.
func ToPaymentApplicationResponses(apps []domain.PaymentApplication) []PaymentApplicationResponse {
	responses := make([]PaymentApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = ToPaymentApplicationResponse(&apps[i])
	}
	return responses
}
