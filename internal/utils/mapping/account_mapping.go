package mapping

import (
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		AccountNumber:   d.AccountNumber,
		AccountName:     d.AccountName,
		AccountType:     string(d.AccountType),
		NormalBalance:   string(d.NormalBalance),
		Description:     d.Description,
		IsSystemAccount: d.IsSystemAccount,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		Balance:         d.Balance,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		AccountNumber:   m.AccountNumber,
		AccountName:     m.AccountName,
		AccountType:     domain.AccountType(m.AccountType),
		NormalBalance:   domain.NormalBalance(m.NormalBalance),
		Description:     m.Description,
		IsSystemAccount: m.IsSystemAccount,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		Balance:         m.Balance,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
