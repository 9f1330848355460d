package services

import (
	"context"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
)

// ReceivableSvc defines the accounts-receivable side of the subsidiary ledger
type ReceivableSvc interface {
	// CreateBill issues a new bill and posts its receivable to the GL.
	CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error)

	// GetBillByID retrieves a specific bill.
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills retrieves a paginated list of bills.
	ListBills(ctx context.Context, params dto.ListBillsParams) (*dto.ListBillsResponse, error)

	// ListOpenBills retrieves all bills with an outstanding balance, oldest
	// due date first.
	ListOpenBills(ctx context.Context) ([]domain.Bill, error)

	// RecordPaymentApplication settles part or all of a bill, recomputes
	// its derived fields, and posts the cash receipt to the GL atomically.
	RecordPaymentApplication(ctx context.Context, billID string, req dto.RecordPaymentRequest, userID string) (*domain.Bill, *domain.PaymentApplication, error)

	// ListPaymentApplications retrieves the settlement history of a bill.
	ListPaymentApplications(ctx context.Context, billID string) ([]domain.PaymentApplication, error)
}

// PayableSvc defines the accounts-payable side of the subsidiary ledger
type PayableSvc interface {
	// CreateExpense records a new pending vendor expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)

	// GetExpenseByID retrieves a specific expense.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)

	// ApproveExpense moves a pending expense to APPROVED.
	ApproveExpense(ctx context.Context, expenseID string, userID string) (*domain.Expense, error)

	// DeclineExpense moves a pending expense to REJECTED.
	DeclineExpense(ctx context.Context, expenseID string, userID string) (*domain.Expense, error)

	// PayExpenseNow computes withholding tax, posts the cash payment to the
	// GL and marks the expense paid, all atomically.
	PayExpenseNow(ctx context.Context, expenseID string, req dto.PayExpenseRequest, userID string) (*domain.Expense, error)

	// PayExpenseLater computes withholding tax and marks the expense
	// approved for payment without a cash posting.
	PayExpenseLater(ctx context.Context, expenseID string, req dto.DeferExpensePaymentRequest, userID string) (*domain.Expense, error)
}

// SubsidiarySvcFacade combines the AR and AP subsidiary ledger interfaces
type SubsidiarySvcFacade interface {
	ReceivableSvc
	PayableSvc
}
