package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

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

const expenseColumns = `expense_id, vendor_id, description, expense_amount, service_charge, wht_rate, wht_amount, net_payment, status, payment_status, expense_account_id, paid_from_account_id, paid_date, reviewed_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for accounts-payable data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.VendorID,
		&m.Description,
		&m.ExpenseAmount,
		&m.ServiceCharge,
		&m.WhtRate,
		&m.WhtAmount,
		&m.NetPayment,
		&m.Status,
		&m.PaymentStatus,
		&m.ExpenseAccountID,
		&m.PaidFromAccountID,
		&m.PaidDate,
		&m.ReviewedBy,
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

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.VendorID,
		m.Description,
		m.ExpenseAmount,
		m.ServiceCharge,
		m.WhtRate,
		m.WhtAmount,
		m.NetPayment,
		m.Status,
		m.PaymentStatus,
		m.ExpenseAccountID,
		m.PaidFromAccountID,
		m.PaidDate,
		m.ReviewedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(*m)
	return &expense, nil
}

// FindExpenseByIDForUpdate selects an expense and locks its row within a transaction.
func (r *PgxExpenseRepository) FindExpenseByIDForUpdate(ctx context.Context, tx pgx.Tx, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1 FOR UPDATE;`

	m, err := scanExpense(tx.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock expense %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(*m)
	return &expense, nil
}

// ListExpenses retrieves a paginated list of expenses using token
// pagination, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + expenseColumns + ` FROM expenses`
	orderByClause := `ORDER BY created_at DESC, expense_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, _, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}

		cursorClause := `WHERE created_at < $1`
		args = append(args, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	var nextTokenVal *string
	if len(expenses) > limit {
		last := expenses[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CreatedAt)
		nextTokenVal = &token
		expenses = expenses[:limit]
	}

	return mapping.ToDomainExpenseSlice(expenses), nextTokenVal, nil
}

const expenseUpdateSet = `
		SET wht_rate = $2, wht_amount = $3, net_payment = $4, status = $5, payment_status = $6,
		    expense_account_id = $7, paid_from_account_id = $8, paid_date = $9, reviewed_by = $10,
		    last_updated_at = $11, last_updated_by = $12`

// UpdateExpense rewrites the mutable fields of an expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.updateExpense(ctx, r.Pool.Exec, expense)
}

// UpdateExpenseInTx rewrites the mutable fields of an expense within a transaction.
func (r *PgxExpenseRepository) UpdateExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	return r.updateExpense(ctx, tx.Exec, expense)
}

func (r *PgxExpenseRepository) updateExpense(ctx context.Context, exec func(context.Context, string, ...any) (pgconn.CommandTag, error), expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `UPDATE expenses` + expenseUpdateSet + ` WHERE expense_id = $1;`
	cmdTag, err := exec(ctx, query,
		m.ExpenseID,
		m.WhtRate,
		m.WhtAmount,
		m.NetPayment,
		m.Status,
		m.PaymentStatus,
		m.ExpenseAccountID,
		m.PaidFromAccountID,
		m.PaidDate,
		m.ReviewedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
