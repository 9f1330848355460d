package repositories

import (
	"context"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ExpenseReader defines read operations for accounts-payable expenses
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a paginated list of expenses using token pagination.
	ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense rewrites the mutable fields of an expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByIDForUpdate selects an expense and locks its row within a transaction.
	FindExpenseByIDForUpdate(ctx context.Context, tx pgx.Tx, expenseID string) (*domain.Expense, error)

	// UpdateExpenseInTx rewrites the mutable fields of an expense within a transaction.
	UpdateExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
