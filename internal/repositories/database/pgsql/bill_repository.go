package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/apperrors"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/models"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/utils/mapping"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const billColumns = `bill_id, resident_id, invoice_number, description, amount, total_paid, balance, payment_status, due_date, created_at, created_by, last_updated_at, last_updated_by`

const applicationColumns = `application_id, bill_id, entry_id, amount_applied, source, bank_name, account_number, payment_date, applied_by, applied_at, notes`

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for accounts-receivable data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryWithTx {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryWithTx = (*PgxBillRepository)(nil)

func scanBill(row pgx.Row) (*models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.ResidentID,
		&m.InvoiceNumber,
		&m.Description,
		&m.Amount,
		&m.TotalPaid,
		&m.Balance,
		&m.PaymentStatus,
		&m.DueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertBill(ctx context.Context, exec func(context.Context, string, ...any) (pgconn.CommandTag, error), bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := exec(ctx, query,
		m.BillID,
		m.ResidentID,
		m.InvoiceNumber,
		m.Description,
		m.Amount,
		m.TotalPaid,
		m.Balance,
		m.PaymentStatus,
		m.DueDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		}
		return fmt.Errorf("failed to save bill %s: %w", m.BillID, err)
	}
	return nil
}

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	return insertBill(ctx, r.Pool.Exec, bill)
}

// SaveBillInTx inserts a new bill within a caller-owned transaction.
func (r *PgxBillRepository) SaveBillInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill) error {
	return insertBill(ctx, tx.Exec, bill)
}

// FindBillByID retrieves a bill by its ID.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`

	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}

	bill := mapping.ToDomainBill(*m)
	return &bill, nil
}

// FindBillByInvoiceNumber retrieves a bill by its unique invoice number.
func (r *PgxBillRepository) FindBillByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE invoice_number = $1;`

	m, err := scanBill(r.Pool.QueryRow(ctx, query, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by invoice number %s: %w", invoiceNumber, err)
	}

	bill := mapping.ToDomainBill(*m)
	return &bill, nil
}

// FindBillByIDForUpdate selects a bill and locks its row within a transaction.
func (r *PgxBillRepository) FindBillByIDForUpdate(ctx context.Context, tx pgx.Tx, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1 FOR UPDATE;`

	m, err := scanBill(tx.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bill %s: %w", billID, err)
	}

	bill := mapping.ToDomainBill(*m)
	return &bill, nil
}

// ListBills retrieves a paginated list of bills using token pagination,
// newest due date first.
func (r *PgxBillRepository) ListBills(ctx context.Context, limit int, nextToken *string) ([]domain.Bill, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + billColumns + ` FROM bills`
	orderByClause := `ORDER BY due_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDueDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}

		cursorClause := `WHERE (due_date, created_at) < ($1, $2)`
		args = append(args, lastDueDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating bill rows: %w", err)
	}

	var nextTokenVal *string
	if len(bills) > limit {
		last := bills[limit-1]
		token := pagination.EncodeToken(last.DueDate, last.CreatedAt)
		nextTokenVal = &token
		bills = bills[:limit]
	}

	return mapping.ToDomainBillSlice(bills), nextTokenVal, nil
}

// ListOpenBills retrieves all bills with an outstanding balance, ordered by
// due date ascending then creation time.
func (r *PgxBillRepository) ListOpenBills(ctx context.Context) ([]domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE payment_status IN ('UNPAID', 'PARTIAL')
		ORDER BY due_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query open bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open bill row: %w", err)
		}
		bills = append(bills, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating open bill rows: %w", err)
	}

	return mapping.ToDomainBillSlice(bills), nil
}

// UpdateBillTotalsInTx rewrites the payment-derived fields of a bill within
// a transaction. The row must already be locked by FindBillByIDForUpdate.
func (r *PgxBillRepository) UpdateBillTotalsInTx(ctx context.Context, tx pgx.Tx, bill domain.Bill, userID string, now time.Time) error {
	m := mapping.ToModelBill(bill)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE bills
		SET total_paid = $2, balance = $3, payment_status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE bill_id = $1;
	`, m.BillID, m.TotalPaid, m.Balance, m.PaymentStatus, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update bill totals for %s: %w", m.BillID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SavePaymentApplicationInTx inserts an immutable settlement row within a transaction.
func (r *PgxBillRepository) SavePaymentApplicationInTx(ctx context.Context, tx pgx.Tx, application domain.PaymentApplication) error {
	m := mapping.ToModelPaymentApplication(application)

	query := `
		INSERT INTO payment_applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.ApplicationID,
		m.BillID,
		m.EntryID,
		m.AmountApplied,
		m.Source,
		m.BankName,
		m.AccountNumber,
		m.PaymentDate,
		m.AppliedBy,
		m.AppliedAt,
		m.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment application %s: %w", m.ApplicationID, err)
	}
	return nil
}

// ListPaymentApplicationsByBillID retrieves the settlement history of a
// bill, oldest first.
func (r *PgxBillRepository) ListPaymentApplicationsByBillID(ctx context.Context, billID string) ([]domain.PaymentApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM payment_applications
		WHERE bill_id = $1
		ORDER BY applied_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment applications for bill %s: %w", billID, err)
	}
	defer rows.Close()

	applications := []models.PaymentApplication{}
	for rows.Next() {
		var m models.PaymentApplication
		err := rows.Scan(
			&m.ApplicationID,
			&m.BillID,
			&m.EntryID,
			&m.AmountApplied,
			&m.Source,
			&m.BankName,
			&m.AccountNumber,
			&m.PaymentDate,
			&m.AppliedBy,
			&m.AppliedAt,
			&m.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment application row for bill %s: %w", billID, err)
		}
		applications = append(applications, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment application rows for bill %s: %w", billID, err)
	}

	return mapping.ToDomainPaymentApplicationSlice(applications), nil
}
