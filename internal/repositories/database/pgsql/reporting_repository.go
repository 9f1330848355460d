package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// AggregateLineTotals returns per-account debit and credit totals over
// posted, non-void entries, optionally bounded by entry date on either end.
func (r *reportingRepository) AggregateLineTotals(ctx context.Context, from *time.Time, to *time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.account_number,
			a.account_name,
			a.account_type,
			COALESCE(SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN l.line_type = 'CREDIT' THEN l.amount ELSE 0 END), 0) AS total_credit
		FROM journal_entry_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.status = 'POSTED'
			AND ($1::timestamptz IS NULL OR e.entry_date >= $1)
			AND ($2::timestamptz IS NULL OR e.entry_date <= $2)
		GROUP BY a.account_id, a.account_number, a.account_name, a.account_type
		ORDER BY a.account_number;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying line totals: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountNumber,
			&row.AccountName,
			&accountType,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning line totals row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line totals rows: %w", err)
	}

	return result, nil
}
