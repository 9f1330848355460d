package services

import (
	"context"
	"fmt"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetTrialBalance returns per-account debit and credit totals over all
// posted entries up to the given date.
func (s *reportingService) GetTrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	rows, err := s.reportingRepo.AggregateLineTotals(ctx, nil, &asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate line totals: %w", err)
	}

	tb := &domain.TrialBalance{
		AsOf:        asOf,
		Rows:        rows,
		GrandDebit:  decimal.Zero,
		GrandCredit: decimal.Zero,
	}
	for _, row := range rows {
		tb.GrandDebit = tb.GrandDebit.Add(row.TotalDebit)
		tb.GrandCredit = tb.GrandCredit.Add(row.TotalCredit)
	}
	return tb, nil
}

// GetIncomeStatement returns revenue and expense movements between two
// dates, inclusive.
func (s *reportingService) GetIncomeStatement(ctx context.Context, from time.Time, to time.Time) (*domain.IncomeStatement, error) {
	rows, err := s.reportingRepo.AggregateLineTotals(ctx, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate line totals: %w", err)
	}

	stmt := &domain.IncomeStatement{
		From:          from,
		To:            to,
		RevenueLines:  []domain.ReportLine{},
		ExpenseLines:  []domain.ReportLine{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, row := range rows {
		switch row.AccountType {
		case domain.Revenue:
			line := toReportLine(row, row.TotalCredit.Sub(row.TotalDebit))
			stmt.RevenueLines = append(stmt.RevenueLines, line)
			stmt.TotalRevenue = stmt.TotalRevenue.Add(line.Amount)
		case domain.ExpenseType:
			line := toReportLine(row, row.TotalDebit.Sub(row.TotalCredit))
			stmt.ExpenseLines = append(stmt.ExpenseLines, line)
			stmt.TotalExpenses = stmt.TotalExpenses.Add(line.Amount)
		}
	}
	stmt.NetIncome = stmt.TotalRevenue.Sub(stmt.TotalExpenses)
	return stmt, nil
}

// GetBalanceSheet returns assets, liabilities and equity as of a date.
// Current-period net income is folded into total equity so the statement
// balances without a closing process.
func (s *reportingService) GetBalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	rows, err := s.reportingRepo.AggregateLineTotals(ctx, nil, &asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate line totals: %w", err)
	}

	sheet := &domain.BalanceSheet{
		AsOf:             asOf,
		AssetLines:       []domain.ReportLine{},
		LiabilityLines:   []domain.ReportLine{},
		EquityLines:      []domain.ReportLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	retainedEarnings := decimal.Zero
	for _, row := range rows {
		switch row.AccountType {
		case domain.Asset:
			line := toReportLine(row, row.TotalDebit.Sub(row.TotalCredit))
			sheet.AssetLines = append(sheet.AssetLines, line)
			sheet.TotalAssets = sheet.TotalAssets.Add(line.Amount)
		case domain.Liability:
			line := toReportLine(row, row.TotalCredit.Sub(row.TotalDebit))
			sheet.LiabilityLines = append(sheet.LiabilityLines, line)
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(line.Amount)
		case domain.Equity:
			line := toReportLine(row, row.TotalCredit.Sub(row.TotalDebit))
			sheet.EquityLines = append(sheet.EquityLines, line)
			sheet.TotalEquity = sheet.TotalEquity.Add(line.Amount)
		case domain.Revenue:
			retainedEarnings = retainedEarnings.Add(row.TotalCredit.Sub(row.TotalDebit))
		case domain.ExpenseType:
			retainedEarnings = retainedEarnings.Sub(row.TotalDebit.Sub(row.TotalCredit))
		}
	}
	sheet.TotalEquity = sheet.TotalEquity.Add(retainedEarnings)
	return sheet, nil
}

func toReportLine(row domain.TrialBalanceRow, amount decimal.Decimal) domain.ReportLine {
	return domain.ReportLine{
		AccountID:     row.AccountID,
		AccountNumber: row.AccountNumber,
		AccountName:   row.AccountName,
		Amount:        amount,
	}
}
