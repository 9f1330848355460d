package mapping

import (
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/models"
)

// ToModelPaymentApplication converts a domain PaymentApplication to a model
func ToModelPaymentApplication(d domain.PaymentApplication) models.PaymentApplication {
	return models.PaymentApplication{
		ApplicationID: d.ApplicationID,
		BillID:        d.BillID,
		EntryID:       d.EntryID,
		AmountApplied: d.AmountApplied,
		Source:        string(d.Source),
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		PaymentDate:   d.PaymentDate,
		AppliedBy:     d.AppliedBy,
		AppliedAt:     d.AppliedAt,
		Notes:         d.Notes,
	}
}

// ToDomainPaymentApplication converts a model PaymentApplication to a domain
func ToDomainPaymentApplication(m models.PaymentApplication) domain.PaymentApplication {
	return domain.PaymentApplication{
		ApplicationID: m.ApplicationID,
		BillID:        m.BillID,
		EntryID:       m.EntryID,
		AmountApplied: m.AmountApplied,
		Source:        domain.PaymentSource(m.Source),
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		PaymentDate:   m.PaymentDate,
		AppliedBy:     m.AppliedBy,
		AppliedAt:     m.AppliedAt,
		Notes:         m.Notes,
	}
}

// ToDomainPaymentApplicationSlice converts model applications to domain
func ToDomainPaymentApplicationSlice(ms []models.PaymentApplication) []domain.PaymentApplication {
	ds := make([]domain.PaymentApplication, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentApplication(m)
	}
	return ds
}
