package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankStatementEntry is one parsed row of an uploaded bank statement.
// Rows are ephemeral matching input, not ledger truth; they survive only as
// audit evidence on the payment applications they produce.
type BankStatementEntry struct {
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber"`
	Amount          decimal.Decimal `json:"amount"`
}

// MatchOutcome classifies what happened to a single statement row.
type MatchOutcome string

const (
	MatchFull    MatchOutcome = "MATCHED"
	MatchPartial MatchOutcome = "PARTIALLY_MATCHED"
	MatchNone    MatchOutcome = "UNMATCHED"
	MatchFailed  MatchOutcome = "FAILED"
)

// ResidualAmount records money received beyond a bill's outstanding balance.
// Residuals are never auto-applied; they exist for mandatory manual review.
type ResidualAmount struct {
	RowIndex        int             `json:"rowIndex"`
	ReferenceNumber string          `json:"referenceNumber"`
	BillID          string          `json:"billID"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	EntryAmount     decimal.Decimal `json:"entryAmount"`
	AppliedAmount   decimal.Decimal `json:"appliedAmount"`
	ResidualAmount  decimal.Decimal `json:"residualAmount"`
}

// UnmatchedEntry is a statement row no open bill could be found for.
type UnmatchedEntry struct {
	RowIndex        int             `json:"rowIndex"`
	ReferenceNumber string          `json:"referenceNumber"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
}

// RowError records a row whose application failed; earlier rows stand.
type RowError struct {
	RowIndex int    `json:"rowIndex"`
	Message  string `json:"message"`
}

// ReconciliationSummary is the outcome of matching one statement batch.
type ReconciliationSummary struct {
	TotalEntries     int              `json:"totalEntries"`
	Matched          int              `json:"matched"`
	PartiallyMatched int              `json:"partiallyMatched"`
	Unmatched        int              `json:"unmatched"`
	TotalMatched     decimal.Decimal  `json:"totalMatched"`
	ResidualAmounts  []ResidualAmount `json:"residualAmounts"`
	UnmatchedEntries []UnmatchedEntry `json:"unmatchedEntries"`
	Errors           []RowError       `json:"errors"`
}
