package dto

import (
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankStatementRowRequest is one parsed statement row as uploaded.
type BankStatementRowRequest struct {
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// ReconcileStatementRequest carries a statement batch and its metadata.
type ReconcileStatementRequest struct {
	BankName      string                    `json:"bankName" binding:"required"`
	AccountNumber string                    `json:"accountNumber" binding:"required"`
	StatementDate time.Time                 `json:"statementDate" binding:"required"`
	Entries       []BankStatementRowRequest `json:"entries" binding:"required,min=1,dive"`
}

// ReconciliationSummaryResponse mirrors domain.ReconciliationSummary.
type ReconciliationSummaryResponse struct {
	TotalEntries     int                     `json:"totalEntries"`
	Matched          int                     `json:"matched"`
	PartiallyMatched int                     `json:"partiallyMatched"`
	Unmatched        int                     `json:"unmatched"`
	TotalMatched     decimal.Decimal         `json:"totalMatched"`
	ResidualAmounts  []domain.ResidualAmount `json:"residualAmounts"`
	UnmatchedEntries []domain.UnmatchedEntry `json:"unmatchedEntries"`
	Errors           []domain.RowError       `json:"errors"`
}

// ToReconciliationSummaryResponse converts the domain summary to its DTO.
func ToReconciliationSummaryResponse(s *domain.ReconciliationSummary) ReconciliationSummaryResponse {
	return ReconciliationSummaryResponse{
		TotalEntries:     s.TotalEntries,
		Matched:          s.Matched,
		PartiallyMatched: s.PartiallyMatched,
		Unmatched:        s.Unmatched,
		TotalMatched:     s.TotalMatched,
		ResidualAmounts:  s.ResidualAmounts,
		UnmatchedEntries: s.UnmatchedEntries,
		Errors:           s.Errors,
	}
}
