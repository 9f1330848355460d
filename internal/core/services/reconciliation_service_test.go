package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReceivableService ---
type MockReceivableService struct {
	mock.Mock
}

var _ portssvc.ReceivableSvc = (*MockReceivableService)(nil)

func (m *MockReceivableService) CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockReceivableService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockReceivableService) ListBills(ctx context.Context, params dto.ListBillsParams) (*dto.ListBillsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBillsResponse), args.Error(1)
}

func (m *MockReceivableService) ListOpenBills(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockReceivableService) RecordPaymentApplication(ctx context.Context, billID string, req dto.RecordPaymentRequest, userID string) (*domain.Bill, *domain.PaymentApplication, error) {
	args := m.Called(ctx, billID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Bill), args.Get(1).(*domain.PaymentApplication), args.Error(2)
}

func (m *MockReceivableService) ListPaymentApplications(ctx context.Context, billID string) ([]domain.PaymentApplication, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentApplication), args.Error(1)
}

// --- Test Suite Setup ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReceivableSvc *MockReceivableService
	service           portssvc.ReconciliationSvc
	userID            string
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReceivableSvc = new(MockReceivableService)
	suite.service = services.NewReconciliationService(suite.mockReceivableSvc)
	suite.userID = uuid.NewString()
}

func (suite *ReconciliationServiceTestSuite) openBill(invoice string, balance int64, dueDaysAgo int) domain.Bill {
	amount := decimal.NewFromInt(balance)
	return domain.Bill{
		BillID:        uuid.NewString(),
		ResidentID:    uuid.NewString(),
		InvoiceNumber: invoice,
		Amount:        amount,
		TotalPaid:     decimal.Zero,
		Balance:       amount,
		PaymentStatus: domain.BillUnpaid,
		DueDate:       time.Now().AddDate(0, 0, -dueDaysAgo),
	}
}

func (suite *ReconciliationServiceTestSuite) statementRequest(rows ...dto.BankStatementRowRequest) dto.ReconcileStatementRequest {
	return dto.ReconcileStatementRequest{
		BankName:      "First Estate Bank",
		AccountNumber: "0011223344",
		StatementDate: time.Now(),
		Entries:       rows,
	}
}

// settledBill returns the bill as RecordPaymentApplication would after
// applying the given amount.
func settledBill(bill domain.Bill, applied decimal.Decimal) *domain.Bill {
	updated := bill
	updated.TotalPaid = bill.TotalPaid.Add(applied)
	updated.Balance = bill.Amount.Sub(updated.TotalPaid)
	updated.PaymentStatus = domain.DeriveBillStatus(updated.Amount, updated.TotalPaid)
	return &updated
}

// --- Test Cases ---

func (suite *ReconciliationServiceTestSuite) TestReconcile_ExactReferenceMatch() {
	ctx := context.Background()
	bill := suite.openBill("INV-100", 5000, 10)
	req := suite.statementRequest(dto.BankStatementRowRequest{
		TransactionDate: time.Now(),
		Description:     "TRF JOHN DOE",
		ReferenceNumber: "inv-100", // Matching is case-insensitive
		Amount:          decimal.NewFromInt(5000),
	})

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, bill.BillID, mock.MatchedBy(func(payReq dto.RecordPaymentRequest) bool {
		return payReq.Source == domain.SourceBankStatement && payReq.Amount.Equal(decimal.NewFromInt(5000))
	}), suite.userID).Return(settledBill(bill, decimal.NewFromInt(5000)), &domain.PaymentApplication{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.TotalEntries)
	suite.Equal(1, summary.Matched)
	suite.Equal(0, summary.PartiallyMatched)
	suite.Equal(0, summary.Unmatched)
	suite.True(summary.TotalMatched.Equal(decimal.NewFromInt(5000)))
	suite.Empty(summary.ResidualAmounts)
	suite.mockReceivableSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_PartialPayment() {
	ctx := context.Background()
	bill := suite.openBill("INV-101", 5000, 5)
	req := suite.statementRequest(dto.BankStatementRowRequest{
		TransactionDate: time.Now(),
		ReferenceNumber: "INV-101",
		Amount:          decimal.NewFromInt(2000),
	})

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, bill.BillID, mock.Anything, suite.userID).
		Return(settledBill(bill, decimal.NewFromInt(2000)), &domain.PaymentApplication{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, summary.Matched)
	suite.Equal(1, summary.PartiallyMatched)
	suite.True(summary.TotalMatched.Equal(decimal.NewFromInt(2000)))
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_ResidualCountsAsMatched() {
	ctx := context.Background()
	bill := suite.openBill("INV-102", 3000, 7)
	req := suite.statementRequest(dto.BankStatementRowRequest{
		TransactionDate: time.Now(),
		ReferenceNumber: "INV-102",
		Amount:          decimal.NewFromInt(3500), // 500 more than owed
	})

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	// Only the outstanding balance is applied; the excess never reaches the bill.
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, bill.BillID, mock.MatchedBy(func(payReq dto.RecordPaymentRequest) bool {
		return payReq.Amount.Equal(decimal.NewFromInt(3000))
	}), suite.userID).Return(settledBill(bill, decimal.NewFromInt(3000)), &domain.PaymentApplication{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Matched)
	suite.Require().Len(summary.ResidualAmounts, 1)
	residual := summary.ResidualAmounts[0]
	suite.Equal("INV-102", residual.InvoiceNumber)
	suite.True(residual.AppliedAmount.Equal(decimal.NewFromInt(3000)))
	suite.True(residual.ResidualAmount.Equal(decimal.NewFromInt(500)))
	suite.True(summary.TotalMatched.Equal(decimal.NewFromInt(3000)))
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_AmountFallbackPicksOldestDue() {
	ctx := context.Background()
	// Open bills arrive due-date ascending; both have balance 4000 and the
	// row carries no usable reference, so the older bill wins.
	older := suite.openBill("INV-103", 4000, 30)
	newer := suite.openBill("INV-104", 4000, 2)
	req := suite.statementRequest(dto.BankStatementRowRequest{
		TransactionDate: time.Now(),
		Description:     "CASH DEP",
		Amount:          decimal.NewFromInt(4000),
	})

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{older, newer}, nil).Once()
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, older.BillID, mock.Anything, suite.userID).
		Return(settledBill(older, decimal.NewFromInt(4000)), &domain.PaymentApplication{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Matched)
	suite.mockReceivableSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_ExhaustedBillNotRematched() {
	ctx := context.Background()
	bill := suite.openBill("INV-105", 1000, 3)
	req := suite.statementRequest(
		dto.BankStatementRowRequest{TransactionDate: time.Now(), ReferenceNumber: "INV-105", Amount: decimal.NewFromInt(1000)},
		dto.BankStatementRowRequest{TransactionDate: time.Now(), ReferenceNumber: "INV-105", Amount: decimal.NewFromInt(1000)},
	)

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, bill.BillID, mock.Anything, suite.userID).
		Return(settledBill(bill, decimal.NewFromInt(1000)), &domain.PaymentApplication{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	// The first row settles the bill; the second finds nothing open.
	suite.Equal(1, summary.Matched)
	suite.Equal(1, summary.Unmatched)
	suite.Require().Len(summary.UnmatchedEntries, 1)
	suite.Equal(1, summary.UnmatchedEntries[0].RowIndex)
	suite.mockReceivableSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_UnmatchedRow() {
	ctx := context.Background()
	bill := suite.openBill("INV-106", 5000, 1)
	req := suite.statementRequest(dto.BankStatementRowRequest{
		TransactionDate: time.Now(),
		Description:     "UNKNOWN TRANSFER",
		ReferenceNumber: "NO-SUCH-INVOICE",
		Amount:          decimal.NewFromInt(750),
	})

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{bill}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Unmatched)
	suite.True(summary.TotalMatched.IsZero())
	suite.mockReceivableSvc.AssertNotCalled(suite.T(), "RecordPaymentApplication", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_RowErrorDoesNotStopBatch() {
	ctx := context.Background()
	first := suite.openBill("INV-107", 2000, 9)
	second := suite.openBill("INV-108", 3000, 4)
	req := suite.statementRequest(
		dto.BankStatementRowRequest{TransactionDate: time.Now(), ReferenceNumber: "INV-107", Amount: decimal.NewFromInt(2000)},
		dto.BankStatementRowRequest{TransactionDate: time.Now(), ReferenceNumber: "INV-108", Amount: decimal.NewFromInt(3000)},
	)

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{first, second}, nil).Once()
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, first.BillID, mock.Anything, suite.userID).
		Return(nil, nil, assert.AnError).Once()
	suite.mockReceivableSvc.On("RecordPaymentApplication", ctx, second.BillID, mock.Anything, suite.userID).
		Return(settledBill(second, decimal.NewFromInt(3000)), &domain.PaymentApplication{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Matched)
	suite.Require().Len(summary.Errors, 1)
	suite.Equal(0, summary.Errors[0].RowIndex)
	suite.True(summary.TotalMatched.Equal(decimal.NewFromInt(3000)))
	suite.mockReceivableSvc.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_NonPositiveRowRejected() {
	ctx := context.Background()
	req := suite.statementRequest(dto.BankStatementRowRequest{
		TransactionDate: time.Now(),
		ReferenceNumber: "INV-109",
		Amount:          decimal.NewFromInt(-100),
	})

	suite.mockReceivableSvc.On("ListOpenBills", ctx).Return([]domain.Bill{}, nil).Once()

	summary, err := suite.service.ReconcileStatement(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Errors, 1)
	suite.Equal(0, summary.Unmatched)
	suite.mockReceivableSvc.AssertNotCalled(suite.T(), "RecordPaymentApplication", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
