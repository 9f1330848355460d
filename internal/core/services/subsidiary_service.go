package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/apperrors"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/middleware"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// subsidiaryService owns Bill and Expense balance and status fields. It is
// the only caller permitted to invoke the ledger poster for AR/AP postings.
type subsidiaryService struct {
	billRepo    portsrepo.BillRepositoryWithTx
	expenseRepo portsrepo.ExpenseRepositoryWithTx
	ledgerSvc   portssvc.LedgerSvcFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewSubsidiaryService creates a new SubsidiaryService.
func NewSubsidiaryService(
	billRepo portsrepo.BillRepositoryWithTx,
	expenseRepo portsrepo.ExpenseRepositoryWithTx,
	ledgerSvc portssvc.LedgerSvcFacade,
	accountSvc portssvc.AccountSvcFacade,
) portssvc.SubsidiarySvcFacade {
	return &subsidiaryService{
		billRepo:    billRepo,
		expenseRepo: expenseRepo,
		ledgerSvc:   ledgerSvc,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.SubsidiarySvcFacade = (*subsidiaryService)(nil)

// CreateBill issues a new bill and posts Dr Accounts Receivable / Cr Estate
// Dues Income, keeping the AR control account in step with the subsidiary
// ledger. Bill insert and posting commit together.
func (s *subsidiaryService) CreateBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: bill amount must be positive", apperrors.ErrValidation)
	}

	existing, err := s.billRepo.FindBillByInvoiceNumber(ctx, req.InvoiceNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check invoice number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: invoice number %s is already in use", apperrors.ErrDuplicate, req.InvoiceNumber)
	}

	arAccount, incomeAccount, err := resolveTemplate(ctx, s.accountSvc, tmplIssueResidentBill)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bill := domain.Bill{
		BillID:        uuid.NewString(),
		ResidentID:    req.ResidentID,
		InvoiceNumber: req.InvoiceNumber,
		Description:   req.Description,
		Amount:        req.Amount,
		TotalPaid:     decimal.Zero,
		Balance:       req.Amount,
		PaymentStatus: domain.BillUnpaid,
		DueDate:       req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	tx, err := s.billRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.billRepo.Rollback(ctx, tx)

	if err := s.billRepo.SaveBillInTx(ctx, tx, bill); err != nil {
		logger.Error("Failed to save bill", slog.String("error", err.Error()), slog.String("invoice_number", req.InvoiceNumber))
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	entryReq := dto.CreateJournalEntryRequest{
		EntryDate:   now,
		Description: fmt.Sprintf("%s - %s", tmplIssueResidentBill.name, req.InvoiceNumber),
		Reference:   req.InvoiceNumber,
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: arAccount.AccountID, LineType: domain.Debit, Amount: req.Amount, Description: req.Description},
			{AccountID: incomeAccount.AccountID, LineType: domain.Credit, Amount: req.Amount, Description: req.Description},
		},
	}
	if _, err := s.ledgerSvc.PostEntryInTx(ctx, tx, entryReq, userID); err != nil {
		return nil, fmt.Errorf("failed to post receivable entry: %w", err)
	}

	if err := s.billRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit bill creation: %w", err)
	}

	logger.Info("Bill created", slog.String("bill_id", bill.BillID), slog.String("invoice_number", bill.InvoiceNumber))
	return &bill, nil
}

// GetBillByID retrieves a specific bill.
func (s *subsidiaryService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

// ListBills retrieves a paginated list of bills.
func (s *subsidiaryService) ListBills(ctx context.Context, params dto.ListBillsParams) (*dto.ListBillsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	bills, nextToken, err := s.billRepo.ListBills(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bills: %w", err)
	}

	return &dto.ListBillsResponse{Bills: dto.ToBillResponses(bills), NextToken: nextToken}, nil
}

// ListOpenBills retrieves every bill with an outstanding balance, oldest due
// date first.
func (s *subsidiaryService) ListOpenBills(ctx context.Context) ([]domain.Bill, error) {
	return s.billRepo.ListOpenBills(ctx)
}

// ListPaymentApplications retrieves the settlement history of a bill.
func (s *subsidiaryService) ListPaymentApplications(ctx context.Context, billID string) ([]domain.PaymentApplication, error) {
	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return nil, err
	}
	return s.billRepo.ListPaymentApplicationsByBillID(ctx, billID)
}

// RecordPaymentApplication settles part or all of a bill. The bill row is
// locked for the duration, the derived fields are recomputed from stored
// amounts, and the cash receipt posts to the GL in the same transaction.
func (s *subsidiaryService) RecordPaymentApplication(ctx context.Context, billID string, req dto.RecordPaymentRequest, userID string) (*domain.Bill, *domain.PaymentApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: applied amount must be positive", apperrors.ErrOverpayment)
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}

	bankAccount, arAccount, err := resolveTemplate(ctx, s.accountSvc, tmplReceivePaymentOnAccount)
	if err != nil {
		return nil, nil, err
	}

	tx, err := s.billRepo.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.billRepo.Rollback(ctx, tx)

	bill, err := s.billRepo.FindBillByIDForUpdate(ctx, tx, billID)
	if err != nil {
		return nil, nil, err
	}

	// Never apply more than what is owed. The balance read is under lock,
	// so a stale-balance race surfaces here, not as a negative balance.
	if req.Amount.GreaterThan(bill.Balance) {
		return nil, nil, fmt.Errorf("%w: applied %s but bill %s has balance %s",
			apperrors.ErrOverpayment, req.Amount.String(), bill.InvoiceNumber, bill.Balance.String())
	}

	now := time.Now().UTC()
	bill.TotalPaid = bill.TotalPaid.Add(req.Amount)
	bill.Balance = bill.Amount.Sub(bill.TotalPaid)
	bill.PaymentStatus = domain.DeriveBillStatus(bill.Amount, bill.TotalPaid)

	entryReq := dto.CreateJournalEntryRequest{
		EntryDate:   req.PaymentDate,
		Description: fmt.Sprintf("%s - %s", tmplReceivePaymentOnAccount.name, bill.InvoiceNumber),
		Reference:   bill.InvoiceNumber,
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: bankAccount.AccountID, LineType: domain.Debit, Amount: req.Amount, Description: req.Notes},
			{AccountID: arAccount.AccountID, LineType: domain.Credit, Amount: req.Amount, Description: req.Notes},
		},
	}
	entry, err := s.ledgerSvc.PostEntryInTx(ctx, tx, entryReq, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to post payment entry: %w", err)
	}

	application := domain.PaymentApplication{
		ApplicationID: uuid.NewString(),
		BillID:        bill.BillID,
		EntryID:       entry.EntryID,
		AmountApplied: req.Amount,
		Source:        source,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		PaymentDate:   req.PaymentDate,
		AppliedBy:     userID,
		AppliedAt:     now,
		Notes:         req.Notes,
	}
	if err := s.billRepo.SavePaymentApplicationInTx(ctx, tx, application); err != nil {
		return nil, nil, fmt.Errorf("failed to save payment application: %w", err)
	}

	if err := s.billRepo.UpdateBillTotalsInTx(ctx, tx, *bill, userID, now); err != nil {
		return nil, nil, fmt.Errorf("failed to update bill totals: %w", err)
	}

	if err := s.billRepo.Commit(ctx, tx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit payment application: %w", err)
	}

	logger.Info("Payment applied",
		slog.String("bill_id", bill.BillID),
		slog.String("amount", req.Amount.String()),
		slog.String("new_status", string(bill.PaymentStatus)),
		slog.String("source", string(source)),
	)
	return bill, &application, nil
}

// CreateExpense records a new pending vendor expense. Withholding amounts
// stay zero until a payment action computes them.
func (s *subsidiaryService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ExpenseAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	if req.ServiceCharge.IsNegative() {
		return nil, fmt.Errorf("%w: service charge must not be negative", apperrors.ErrValidation)
	}

	expenseAccountID := req.ExpenseAccountID
	if expenseAccountID == "" {
		generalExpense, err := s.accountSvc.GetAccountByNumber(ctx, acctNumGeneralExpense)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default expense account: %w", err)
		}
		expenseAccountID = generalExpense.AccountID
	} else {
		account, err := s.accountSvc.GetAccountByID(ctx, expenseAccountID)
		if err != nil {
			return nil, err
		}
		if account.AccountType != domain.ExpenseType {
			return nil, fmt.Errorf("%w: account %s is not an expense account", apperrors.ErrValidation, account.AccountNumber)
		}
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:        uuid.NewString(),
		VendorID:         req.VendorID,
		Description:      req.Description,
		ExpenseAmount:    req.ExpenseAmount,
		ServiceCharge:    req.ServiceCharge,
		WhtRate:          decimal.Zero,
		WhtAmount:        decimal.Zero,
		NetPayment:       decimal.Zero,
		Status:           domain.ExpensePending,
		PaymentStatus:    domain.ExpenseUnpaid,
		ExpenseAccountID: expenseAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("vendor_id", expense.VendorID))
	return &expense, nil
}

// GetExpenseByID retrieves a specific expense.
func (s *subsidiaryService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses retrieves a paginated list of expenses.
func (s *subsidiaryService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	return &dto.ListExpensesResponse{Expenses: dto.ToExpenseResponses(expenses), NextToken: nextToken}, nil
}

// ApproveExpense moves a pending expense to APPROVED.
func (s *subsidiaryService) ApproveExpense(ctx context.Context, expenseID string, userID string) (*domain.Expense, error) {
	return s.reviewExpense(ctx, expenseID, domain.ExpenseApproved, userID)
}

// DeclineExpense moves a pending expense to REJECTED.
func (s *subsidiaryService) DeclineExpense(ctx context.Context, expenseID string, userID string) (*domain.Expense, error) {
	return s.reviewExpense(ctx, expenseID, domain.ExpenseRejected, userID)
}

func (s *subsidiaryService) reviewExpense(ctx context.Context, expenseID string, outcome domain.ExpenseStatus, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpensePending {
		return nil, fmt.Errorf("%w: expense has status %s, expected PENDING", apperrors.ErrInvalidState, expense.Status)
	}

	now := time.Now().UTC()
	expense.Status = outcome
	expense.ReviewedBy = userID
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense review", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	logger.Info("Expense reviewed", slog.String("expense_id", expenseID), slog.String("outcome", string(outcome)))
	return expense, nil
}

// PayExpenseNow computes withholding tax and settles an approved expense
// with a cash posting: Dr expense account for the gross, Cr WHT payable for
// the withheld portion, Cr bank for the net payment. Expense update and
// posting commit together.
func (s *subsidiaryService) PayExpenseNow(ctx context.Context, expenseID string, req dto.PayExpenseRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bankAccount, err := s.accountSvc.GetAccountByID(ctx, req.BankAccountID)
	if err != nil {
		return nil, err
	}
	if bankAccount.AccountType != domain.Asset {
		return nil, fmt.Errorf("%w: account %s is not an asset account", apperrors.ErrValidation, bankAccount.AccountNumber)
	}

	whtAccount, err := s.accountSvc.GetAccountByNumber(ctx, acctNumWhtPayable)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve withholding tax account: %w", err)
	}

	tx, err := s.expenseRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.expenseRepo.Rollback(ctx, tx)

	expense, err := s.expenseRepo.FindExpenseByIDForUpdate(ctx, tx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpenseApproved {
		return nil, fmt.Errorf("%w: expense has status %s, expected APPROVED", apperrors.ErrInvalidState, expense.Status)
	}
	if expense.PaymentStatus == domain.ExpensePaymentSettled {
		return nil, fmt.Errorf("%w: expense is already paid", apperrors.ErrInvalidState)
	}

	wht, err := accounting.CalculateWithholding(expense.ExpenseAmount, expense.ServiceCharge, req.WhtRate)
	if err != nil {
		return nil, err
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	gross := expense.ExpenseAmount.Add(expense.ServiceCharge)
	lines := []dto.CreateEntryLineRequest{
		{AccountID: expense.ExpenseAccountID, LineType: domain.Debit, Amount: gross, Description: expense.Description},
	}
	if wht.WhtAmount.GreaterThan(decimal.Zero) {
		lines = append(lines, dto.CreateEntryLineRequest{
			AccountID: whtAccount.AccountID, LineType: domain.Credit, Amount: wht.WhtAmount, Description: "Withholding tax on service charge",
		})
	}
	lines = append(lines, dto.CreateEntryLineRequest{
		AccountID: bankAccount.AccountID, LineType: domain.Credit, Amount: wht.NetPayment, Description: expense.Description,
	})

	entryReq := dto.CreateJournalEntryRequest{
		EntryDate:   paymentDate,
		Description: fmt.Sprintf("Pay Vendor Expense - %s", expense.Description),
		Reference:   expense.ExpenseID,
		Lines:       lines,
	}
	if _, err := s.ledgerSvc.PostEntryInTx(ctx, tx, entryReq, userID); err != nil {
		return nil, fmt.Errorf("failed to post expense payment entry: %w", err)
	}

	now := time.Now().UTC()
	expense.WhtRate = req.WhtRate
	expense.WhtAmount = wht.WhtAmount
	expense.NetPayment = wht.NetPayment
	expense.PaymentStatus = domain.ExpensePaymentSettled
	expense.PaidFromAccountID = &bankAccount.AccountID
	expense.PaidDate = &paymentDate
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpenseInTx(ctx, tx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if err := s.expenseRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit expense payment: %w", err)
	}

	logger.Info("Expense paid",
		slog.String("expense_id", expenseID),
		slog.String("net_payment", wht.NetPayment.String()),
		slog.String("wht_amount", wht.WhtAmount.String()),
	)
	return expense, nil
}

// PayExpenseLater computes withholding tax and marks an approved expense for
// later settlement. No cash posting happens here.
func (s *subsidiaryService) PayExpenseLater(ctx context.Context, expenseID string, req dto.DeferExpensePaymentRequest, userID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpenseApproved {
		return nil, fmt.Errorf("%w: expense has status %s, expected APPROVED", apperrors.ErrInvalidState, expense.Status)
	}
	if expense.PaymentStatus == domain.ExpensePaymentSettled {
		return nil, fmt.Errorf("%w: expense is already paid", apperrors.ErrInvalidState)
	}

	wht, err := accounting.CalculateWithholding(expense.ExpenseAmount, expense.ServiceCharge, req.WhtRate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense.WhtRate = req.WhtRate
	expense.WhtAmount = wht.WhtAmount
	expense.NetPayment = wht.NetPayment
	expense.PaymentStatus = domain.ExpenseApprovedForPayment
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense for deferred payment", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	logger.Info("Expense approved for payment", slog.String("expense_id", expenseID), slog.String("net_payment", wht.NetPayment.String()))
	return expense, nil
}
