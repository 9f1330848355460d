package services

import (
	"context"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
)

// ReportingSvc exposes read-side aggregations over posted, non-void lines.
type ReportingSvc interface {
	// GetTrialBalance returns per-account debit/credit totals as of a date.
	GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// GetIncomeStatement returns revenue and expense movements over a period.
	GetIncomeStatement(ctx context.Context, from time.Time, to time.Time) (*domain.IncomeStatement, error)

	// GetBalanceSheet returns the financial position as of a date.
	GetBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)
}
