package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/apperrors"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/middleware"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService is the double-entry posting engine. It is the sole mutation
// path for account balances; every AR/AP flow funnels its GL effect through
// here.
type ledgerService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountSvc  portssvc.AccountSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(journalRepo portsrepo.JournalRepositoryWithTx, accountSvc portssvc.AccountSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// preparedEntry bundles a validated entry, its lines and the net balance
// deltas per account, ready for persistence.
type preparedEntry struct {
	entry          domain.JournalEntry
	lines          []domain.JournalEntryLine
	balanceChanges map[string]decimal.Decimal
}

// prepareEntry validates the request and builds the domain objects.
// All validation happens here, before any mutation.
func (s *ledgerService) prepareEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*preparedEntry, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("%w: entry description is required", apperrors.ErrValidation)
	}

	// Lines must touch at least two different accounts.
	accountSet := make(map[string]struct{})
	for _, lineReq := range req.Lines {
		accountSet[lineReq.AccountID] = struct{}{}
	}
	if len(accountSet) < 2 {
		return nil, fmt.Errorf("%w: journal entry must affect at least two different accounts", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalEntryLine, len(req.Lines))
	accountIDs := make([]string, 0, len(accountSet))
	for id := range accountSet {
		accountIDs = append(accountIDs, id)
	}
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			LineType:    lineReq.LineType,
			Amount:      lineReq.Amount,
			Description: lineReq.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	// Positive amounts and exact debit/credit equality. No tolerance.
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, err
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.AccountNumber)
		}
	}

	// Net signed balance change per account.
	balanceChanges := make(map[string]decimal.Decimal)
	for _, line := range lines {
		signedAmount, err := accounting.CalculateSignedAmount(line, accountsMap[line.AccountID].AccountType)
		if err != nil {
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		balanceChanges[line.AccountID] = balanceChanges[line.AccountID].Add(signedAmount)
	}

	debits, credits := accounting.SumLines(lines)
	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   req.EntryDate,
		Description: req.Description,
		Reference:   req.Reference,
		Status:      domain.Posted,
		TotalDebit:  debits,
		TotalCredit: credits,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	return &preparedEntry{entry: entry, lines: lines, balanceChanges: balanceChanges}, nil
}

// PostEntry validates, balances, numbers and persists a new journal entry.
func (s *ledgerService) PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	prepared, err := s.prepareEntry(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	entryNumber, err := s.journalRepo.SaveEntry(ctx, prepared.entry, prepared.lines, prepared.balanceChanges)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	prepared.entry.EntryNumber = entryNumber
	logger.Info("Journal entry posted", slog.String("entry_id", prepared.entry.EntryID), slog.String("entry_number", entryNumber))
	return &prepared.entry, nil
}

// PostEntryInTx posts an entry within a caller-owned transaction. The
// subsidiary ledger uses this so a bill or expense write and its GL effect
// commit together.
func (s *ledgerService) PostEntryInTx(ctx context.Context, tx pgx.Tx, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	prepared, err := s.prepareEntry(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	entryNumber, err := s.journalRepo.SaveEntryInTx(ctx, tx, prepared.entry, prepared.lines, prepared.balanceChanges)
	if err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	prepared.entry.EntryNumber = entryNumber
	return &prepared.entry, nil
}

// VoidEntry transitions a posted entry to VOID. Its lines stay stored for
// audit but are excluded from balance aggregation from this point on.
func (s *ledgerService) VoidEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry %s has status %s, expected POSTED", apperrors.ErrInvalidState, entry.EntryNumber, entry.Status)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}

	inverseChanges, err := s.inverseBalanceChanges(ctx, lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.journalRepo.VoidEntry(ctx, entryID, inverseChanges, userID, now); err != nil {
		logger.Error("Failed to void journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to void entry %s: %w", entryID, err)
	}

	entry.Status = domain.Void
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	logger.Info("Journal entry voided", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// ReverseEntry creates a brand-new entry dated now with every line's
// debit/credit role swapped and reversalOfEntryID pointing at the original.
// The original entry is untouched.
func (s *ledgerService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry %s has status %s, expected POSTED", apperrors.ErrInvalidState, original.EntryNumber, original.Status)
	}
	if original.ReversalOfEntryID != nil {
		return nil, fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrInvalidState, original.EntryNumber)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}

	now := time.Now().UTC()
	newEntryID := uuid.NewString()

	reversingLines := make([]domain.JournalEntryLine, len(originalLines))
	for i, origLine := range originalLines {
		newType := domain.Credit
		if origLine.LineType == domain.Credit {
			newType = domain.Debit
		}
		reversingLines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     newEntryID,
			AccountID:   origLine.AccountID,
			LineType:    newType,
			Amount:      origLine.Amount,
			Description: origLine.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	balanceChanges, err := s.signedBalanceChanges(ctx, reversingLines)
	if err != nil {
		return nil, err
	}

	reversingEntry := domain.JournalEntry{
		EntryID:           newEntryID,
		EntryDate:         now,
		Description:       fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, original.Description),
		Reference:         original.Reference,
		Status:            domain.Posted,
		TotalDebit:        original.TotalCredit,
		TotalCredit:       original.TotalDebit,
		ReversalOfEntryID: &original.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	entryNumber, err := s.journalRepo.SaveEntry(ctx, reversingEntry, reversingLines, balanceChanges)
	if err != nil {
		logger.Error("Failed to save reversing entry", slog.String("error", err.Error()), slog.String("original_entry_id", entryID))
		return nil, fmt.Errorf("failed to save reversing entry: %w", err)
	}

	reversingEntry.EntryNumber = entryNumber
	logger.Info("Journal entry reversed", slog.String("original_entry_id", entryID), slog.String("reversing_entry_number", entryNumber))
	return &reversingEntry, nil
}

// signedBalanceChanges computes the net signed delta per account for a line set.
func (s *ledgerService) signedBalanceChanges(ctx context.Context, lines []domain.JournalEntryLine) (map[string]decimal.Decimal, error) {
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for balance calculation: %w", err)
	}

	changes := make(map[string]decimal.Decimal)
	for _, line := range lines {
		acc, ok := accountsMap[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, line.AccountID)
		}
		signedAmount, err := accounting.CalculateSignedAmount(line, acc.AccountType)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate signed amount: %w", err)
		}
		changes[line.AccountID] = changes[line.AccountID].Add(signedAmount)
	}
	return changes, nil
}

// inverseBalanceChanges negates the signed deltas of a line set, used when
// voiding an entry.
func (s *ledgerService) inverseBalanceChanges(ctx context.Context, lines []domain.JournalEntryLine) (map[string]decimal.Decimal, error) {
	changes, err := s.signedBalanceChanges(ctx, lines)
	if err != nil {
		return nil, err
	}
	for accountID, change := range changes {
		changes[accountID] = change.Neg()
	}
	return changes, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of journal entries.
func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	entryResponses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		entryResponses[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{Entries: entryResponses, NextToken: nextToken}, nil
}

// ListLinesByAccount retrieves a paginated list of posted, non-void lines
// for one account.
func (s *ledgerService) ListLinesByAccount(ctx context.Context, accountID string, params dto.ListLinesParams) (*dto.ListLinesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	lines, nextToken, err := s.journalRepo.ListLinesByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for account %s: %w", accountID, err)
	}

	return &dto.ListLinesResponse{Lines: dto.ToEntryLineResponses(lines), NextToken: nextToken}, nil
}
