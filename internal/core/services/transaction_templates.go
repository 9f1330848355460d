package services

import (
	"context"
	"fmt"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
)

// System account numbers fixed by the chart-of-accounts seed migration.
const (
	acctNumOperatingBank      = "1010"
	acctNumAccountsReceivable = "1200"
	acctNumWhtPayable         = "2100"
	acctNumDuesIncome         = "4000"
	acctNumGeneralExpense     = "5000"
)

// transactionTemplate names a standard two-sided posting and the system
// accounts it moves money between. Subsidiary flows select their GL effect
// through these instead of building line sets ad hoc.
type transactionTemplate struct {
	name                string
	debitAccountNumber  string
	creditAccountNumber string
}

var (
	tmplReceivePaymentOnAccount = transactionTemplate{
		name:                "Receive Payment on Account",
		debitAccountNumber:  acctNumOperatingBank,
		creditAccountNumber: acctNumAccountsReceivable,
	}
	tmplIssueResidentBill = transactionTemplate{
		name:                "Issue Resident Bill",
		debitAccountNumber:  acctNumAccountsReceivable,
		creditAccountNumber: acctNumDuesIncome,
	}
)

// resolveTemplate looks up the two system accounts behind a template.
func resolveTemplate(ctx context.Context, accountSvc portssvc.AccountSvcFacade, tmpl transactionTemplate) (debit *domain.Account, credit *domain.Account, err error) {
	debit, err = accountSvc.GetAccountByNumber(ctx, tmpl.debitAccountNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve debit account %s for template %q: %w", tmpl.debitAccountNumber, tmpl.name, err)
	}
	credit, err = accountSvc.GetAccountByNumber(ctx, tmpl.creditAccountNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve credit account %s for template %q: %w", tmpl.creditAccountNumber, tmpl.name, err)
	}
	return debit, credit, nil
}
