package services

import (
	"context"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/jackc/pgx/v5"
)

// LedgerReaderSvc defines read operations for the general ledger
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// ListLinesByAccount retrieves a paginated list of posted, non-void
	// lines affecting one account.
	ListLinesByAccount(ctx context.Context, accountID string, params dto.ListLinesParams) (*dto.ListLinesResponse, error)
}

// LedgerPosterSvc defines the balance-affecting operations of the ledger.
// This is the single mutation path for account balances; subsidiary flows
// must funnel their GL effects through it.
type LedgerPosterSvc interface {
	// PostEntry validates, balances, numbers and persists a new entry.
	PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostEntryInTx is PostEntry participating in a caller-owned database
	// transaction so a subsidiary write and its posting commit together.
	PostEntryInTx(ctx context.Context, tx pgx.Tx, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// VoidEntry transitions a posted entry to VOID, excluding its lines
	// from balance aggregation while retaining them for audit.
	VoidEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// ReverseEntry creates a new entry dated now with every line's
	// debit/credit role swapped; the original entry is untouched.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerPosterSvc
}
