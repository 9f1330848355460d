package services

import (
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
)

// NewServiceContainer wires the application services in dependency order.
// The subsidiary ledger sits on top of the ledger poster, and reconciliation
// sits on top of the subsidiary ledger.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	ledgerSvc := NewLedgerService(repos.JournalRepo, accountSvc)
	subsidiarySvc := NewSubsidiaryService(repos.BillRepo, repos.ExpenseRepo, ledgerSvc, accountSvc)
	reconciliationSvc := NewReconciliationService(subsidiarySvc)
	reportingSvc := NewReportingService(repos.ReportingRepo)

	return &portssvc.ServiceContainer{
		Account:        accountSvc,
		Ledger:         ledgerSvc,
		Subsidiary:     subsidiarySvc,
		Reconciliation: reconciliationSvc,
		Reporting:      reportingSvc,
	}
}
