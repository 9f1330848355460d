package repositories

import (
	"context"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BillReader defines read operations for accounts-receivable bills
type BillReader interface {
	// FindBillByID retrieves a specific bill by its unique identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindBillByInvoiceNumber retrieves a bill by its unique invoice number.
	FindBillByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Bill, error)

	// ListBills retrieves a paginated list of bills using token pagination.
	ListBills(ctx context.Context, limit int, nextToken *string) ([]domain.Bill, *string, error)

	// ListOpenBills retrieves every bill with an outstanding balance,
	// ordered by due date ascending then creation time (FIFO for matching).
	ListOpenBills(ctx context.Context) ([]domain.Bill, error)
}

// BillWriter defines write operations for bills
type BillWriter interface {
	// SaveBill persists a new bill.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// SaveBillInTx persists a new bill within a caller-owned transaction,
	// used when the bill and its receivable posting must commit together.
	SaveBillInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill) error

	// FindBillByIDForUpdate selects a bill and locks its row within a transaction.
	FindBillByIDForUpdate(ctx context.Context, tx pgx.Tx, billID string) (*domain.Bill, error)

	// UpdateBillTotalsInTx rewrites the derived settlement fields of a bill
	// within a transaction.
	UpdateBillTotalsInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill, userID string, now time.Time) error
}

// PaymentApplicationRepository persists immutable settlement records
type PaymentApplicationRepository interface {
	// SavePaymentApplicationInTx persists an application within a transaction.
	SavePaymentApplicationInTx(ctx context.Context, tx pgx.Tx, application domain.PaymentApplication) error

	// ListPaymentApplicationsByBillID retrieves the settlement history of a bill.
	ListPaymentApplicationsByBillID(ctx context.Context, billID string) ([]domain.PaymentApplication, error)
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
	PaymentApplicationRepository
}

// BillRepositoryWithTx extends BillRepositoryFacade with transaction capabilities
type BillRepositoryWithTx interface {
	BillRepositoryFacade
	TransactionManager
}
