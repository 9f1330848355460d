package services

import (
	"context"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
)

// ReconciliationSvc matches parsed bank-statement rows against open bills
// and settles the matches through the subsidiary ledger.
type ReconciliationSvc interface {
	// ReconcileStatement processes one statement batch in input order and
	// returns the matching summary. Unmatched and residual outcomes are
	// part of the summary, not errors; a row that fails to apply is
	// recorded and does not roll back earlier rows.
	ReconcileStatement(ctx context.Context, req dto.ReconcileStatementRequest, userID string) (*domain.ReconciliationSummary, error)
}
