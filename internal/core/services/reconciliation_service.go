package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/middleware"
	"github.com/shopspring/decimal"
)

// openBillState tracks a bill's working balance while a batch is matched.
// The stored balance only moves when a row actually applies, so the working
// copy keeps later rows in the same batch from re-matching an exhausted bill.
type openBillState struct {
	bill    domain.Bill
	balance decimal.Decimal
}

type reconciliationService struct {
	receivableSvc portssvc.ReceivableSvc
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(receivableSvc portssvc.ReceivableSvc) portssvc.ReconciliationSvc {
	return &reconciliationService{receivableSvc: receivableSvc}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

// ReconcileStatement matches each statement row against open bills and
// settles what it can. Rows are processed strictly in input order; each
// settlement commits on its own, so a failing row is reported in the summary
// without undoing earlier rows.
func (s *reconciliationService) ReconcileStatement(ctx context.Context, req dto.ReconcileStatementRequest, userID string) (*domain.ReconciliationSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	openBills, err := s.receivableSvc.ListOpenBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load open bills: %w", err)
	}

	// Open bills arrive ordered by due date ascending, which makes the
	// amount-fallback pass settle the oldest obligation first.
	working := make([]*openBillState, 0, len(openBills))
	byInvoice := make(map[string]*openBillState, len(openBills))
	for _, bill := range openBills {
		state := &openBillState{bill: bill, balance: bill.Balance}
		working = append(working, state)
		byInvoice[strings.ToUpper(strings.TrimSpace(bill.InvoiceNumber))] = state
	}

	summary := &domain.ReconciliationSummary{
		TotalEntries:     len(req.Entries),
		TotalMatched:     decimal.Zero,
		ResidualAmounts:  []domain.ResidualAmount{},
		UnmatchedEntries: []domain.UnmatchedEntry{},
		Errors:           []domain.RowError{},
	}

	for i, row := range req.Entries {
		if row.Amount.LessThanOrEqual(decimal.Zero) {
			summary.Errors = append(summary.Errors, domain.RowError{
				RowIndex: i,
				Message:  "statement amount must be positive",
			})
			continue
		}

		state := s.matchRow(row, byInvoice, working)
		if state == nil {
			summary.Unmatched++
			summary.UnmatchedEntries = append(summary.UnmatchedEntries, domain.UnmatchedEntry{
				RowIndex:        i,
				ReferenceNumber: row.ReferenceNumber,
				Description:     row.Description,
				Amount:          row.Amount,
			})
			continue
		}

		applied := decimal.Min(row.Amount, state.balance)
		paymentReq := dto.RecordPaymentRequest{
			Amount:        applied,
			Source:        domain.SourceBankStatement,
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			PaymentDate:   row.TransactionDate,
			Notes:         row.Description,
		}
		bill, _, err := s.receivableSvc.RecordPaymentApplication(ctx, state.bill.BillID, paymentReq, userID)
		if err != nil {
			logger.Error("Failed to apply statement row",
				slog.Int("row_index", i),
				slog.String("bill_id", state.bill.BillID),
				slog.String("error", err.Error()),
			)
			summary.Errors = append(summary.Errors, domain.RowError{
				RowIndex: i,
				Message:  fmt.Sprintf("failed to apply payment to bill %s: %s", state.bill.InvoiceNumber, err.Error()),
			})
			continue
		}

		state.balance = bill.Balance
		summary.TotalMatched = summary.TotalMatched.Add(applied)

		if row.Amount.GreaterThan(applied) {
			// Over-payment: bill is fully settled and the excess goes to
			// manual review. Counted as matched since the bill closed.
			summary.Matched++
			summary.ResidualAmounts = append(summary.ResidualAmounts, domain.ResidualAmount{
				RowIndex:        i,
				ReferenceNumber: row.ReferenceNumber,
				BillID:          bill.BillID,
				InvoiceNumber:   bill.InvoiceNumber,
				EntryAmount:     row.Amount,
				AppliedAmount:   applied,
				ResidualAmount:  row.Amount.Sub(applied),
			})
		} else if bill.Balance.IsZero() {
			summary.Matched++
		} else {
			summary.PartiallyMatched++
		}
	}

	logger.Info("Statement reconciled",
		slog.String("bank_name", req.BankName),
		slog.Int("total_entries", summary.TotalEntries),
		slog.Int("matched", summary.Matched),
		slog.Int("partially_matched", summary.PartiallyMatched),
		slog.Int("unmatched", summary.Unmatched),
		slog.Int("errors", len(summary.Errors)),
		slog.String("total_matched", summary.TotalMatched.String()),
	)
	return summary, nil
}

// matchRow finds the open bill a statement row settles. An exact reference
// to invoice number match wins; otherwise the oldest-due open bill whose
// outstanding balance equals the row amount is taken. Bills already
// exhausted by earlier rows in the batch never match.
func (s *reconciliationService) matchRow(row dto.BankStatementRowRequest, byInvoice map[string]*openBillState, working []*openBillState) *openBillState {
	ref := strings.ToUpper(strings.TrimSpace(row.ReferenceNumber))
	if ref != "" {
		if state, ok := byInvoice[ref]; ok && state.balance.GreaterThan(decimal.Zero) {
			return state
		}
	}

	for _, state := range working {
		if state.balance.GreaterThan(decimal.Zero) && state.balance.Equal(row.Amount) {
			return state
		}
	}
	return nil
}
