package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AggregateLineTotals(ctx context.Context, from *time.Time, to *time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func row(number, name string, accountType domain.AccountType, debit, credit int64) domain.TrialBalanceRow {
	return domain.TrialBalanceRow{
		AccountID:     uuid.NewString(),
		AccountNumber: number,
		AccountName:   name,
		AccountType:   accountType,
		TotalDebit:    decimal.NewFromInt(debit),
		TotalCredit:   decimal.NewFromInt(credit),
	}
}

// Totals below describe a small period of activity: 5000 billed to a
// resident, 2000 of it collected, and a 3000 expense paid with 150 withheld.
func sampleRows() []domain.TrialBalanceRow {
	return []domain.TrialBalanceRow{
		row("1010", "Operating Bank Account", domain.Asset, 2000, 2850),
		row("1200", "Accounts Receivable", domain.Asset, 5000, 2000),
		row("2100", "Withholding Tax Payable", domain.Liability, 0, 150),
		row("4000", "Estate Dues Income", domain.Revenue, 0, 5000),
		row("5000", "General Expenses", domain.ExpenseType, 3000, 0),
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetTrialBalance_GrandTotalsEqual() {
	ctx := context.Background()
	asOf := time.Now()

	suite.mockReportingRepo.On("AggregateLineTotals", ctx, (*time.Time)(nil), mock.AnythingOfType("*time.Time")).
		Return(sampleRows(), nil).Once()

	tb, err := suite.service.GetTrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Len(tb.Rows, 5)
	suite.True(tb.GrandDebit.Equal(decimal.NewFromInt(10000)))
	suite.True(tb.GrandCredit.Equal(decimal.NewFromInt(10000)))
	suite.True(tb.GrandDebit.Equal(tb.GrandCredit))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetIncomeStatement_NetIncome() {
	ctx := context.Background()
	from := time.Now().AddDate(0, -1, 0)
	to := time.Now()

	suite.mockReportingRepo.On("AggregateLineTotals", ctx, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return(sampleRows(), nil).Once()

	stmt, err := suite.service.GetIncomeStatement(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(stmt.RevenueLines, 1)
	suite.Require().Len(stmt.ExpenseLines, 1)
	suite.True(stmt.TotalRevenue.Equal(decimal.NewFromInt(5000)))
	suite.True(stmt.TotalExpenses.Equal(decimal.NewFromInt(3000)))
	suite.True(stmt.NetIncome.Equal(decimal.NewFromInt(2000)))
}

func (suite *ReportingServiceTestSuite) TestGetIncomeStatement_RevenueNetOfReversals() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		// A 500 debit against revenue from a reversing entry.
		row("4000", "Estate Dues Income", domain.Revenue, 500, 5000),
	}

	suite.mockReportingRepo.On("AggregateLineTotals", ctx, mock.Anything, mock.Anything).Return(rows, nil).Once()

	stmt, err := suite.service.GetIncomeStatement(ctx, time.Now().AddDate(0, -1, 0), time.Now())

	suite.Require().NoError(err)
	suite.True(stmt.TotalRevenue.Equal(decimal.NewFromInt(4500)))
}

func (suite *ReportingServiceTestSuite) TestGetBalanceSheet_Balances() {
	ctx := context.Background()
	asOf := time.Now()

	suite.mockReportingRepo.On("AggregateLineTotals", ctx, (*time.Time)(nil), mock.AnythingOfType("*time.Time")).
		Return(sampleRows(), nil).Once()

	sheet, err := suite.service.GetBalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	// Assets: bank 2000-2850 = -850, AR 5000-2000 = 3000.
	suite.True(sheet.TotalAssets.Equal(decimal.NewFromInt(2150)))
	suite.True(sheet.TotalLiabilities.Equal(decimal.NewFromInt(150)))
	// No equity accounts have moved, so equity is exactly the period's
	// net income of 2000.
	suite.True(sheet.TotalEquity.Equal(decimal.NewFromInt(2000)))
	suite.True(sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)))
}

func (suite *ReportingServiceTestSuite) TestGetBalanceSheet_EquityLinesIncluded() {
	ctx := context.Background()
	rows := []domain.TrialBalanceRow{
		row("1010", "Operating Bank Account", domain.Asset, 10000, 0),
		row("3000", "Retained Earnings", domain.Equity, 0, 10000),
	}

	suite.mockReportingRepo.On("AggregateLineTotals", ctx, mock.Anything, mock.Anything).Return(rows, nil).Once()

	sheet, err := suite.service.GetBalanceSheet(ctx, time.Now())

	suite.Require().NoError(err)
	suite.Require().Len(sheet.EquityLines, 1)
	suite.True(sheet.TotalEquity.Equal(decimal.NewFromInt(10000)))
	suite.True(sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)))
}

// --- Run Test Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
