package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted EntryStatus = "POSTED"
	Void   EntryStatus = "VOID"
)

// LineType indicates whether an entry line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple lines. Immutable once posted except for the transition to VOID;
// a reversal creates a new entry and never mutates the original.
type JournalEntry struct {
	EntryID          string          `json:"entryID"`     // Primary key (UUID)
	EntryNumber      string          `json:"entryNumber"` // Monotonic, human-readable (e.g. "JE-00042")
	EntryDate        time.Time       `json:"entryDate"`
	Description      string          `json:"description"`
	Reference        string          `json:"reference"` // External document reference, nullable
	Status           EntryStatus     `json:"status"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	ReversalOfEntryID *string        `json:"reversalOfEntryID,omitempty"` // Set on reversing entries only
	AuditFields
	Lines []JournalEntryLine `json:"lines,omitempty"` // Often loaded separately
}

// JournalEntryLine represents a single debit or credit within a journal
// entry, affecting one account. Lines are never edited after posting.
type JournalEntryLine struct {
	LineID      string          `json:"lineID"`  // Primary key (UUID)
	EntryID     string          `json:"entryID"` // FK -> JournalEntry
	AccountID   string          `json:"accountID"`
	LineType    LineType        `json:"lineType"`
	Amount      decimal.Decimal `json:"amount"` // Always positive
	Description string          `json:"description"`
	AuditFields
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance after this line
}
