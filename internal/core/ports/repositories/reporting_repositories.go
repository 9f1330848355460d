package repositories

import (
	"context"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
)

// ReportingRepository aggregates posted, non-void journal entry lines.
// Everything the report services build rests on this one aggregation, so
// the debit/credit invariant of the poster carries straight through.
type ReportingRepository interface {
	// AggregateLineTotals returns per-account debit and credit totals over
	// posted, non-void entries, optionally bounded by entry date.
	AggregateLineTotals(ctx context.Context, from *time.Time, to *time.Time) ([]domain.TrialBalanceRow, error)
}
