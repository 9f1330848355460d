package mapping

import (
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/models"
)

// ToModelBill converts a domain Bill to a model Bill
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:        d.BillID,
		ResidentID:    d.ResidentID,
		InvoiceNumber: d.InvoiceNumber,
		Description:   d.Description,
		Amount:        d.Amount,
		TotalPaid:     d.TotalPaid,
		Balance:       d.Balance,
		PaymentStatus: string(d.PaymentStatus),
		DueDate:       d.DueDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:        m.BillID,
		ResidentID:    m.ResidentID,
		InvoiceNumber: m.InvoiceNumber,
		Description:   m.Description,
		Amount:        m.Amount,
		TotalPaid:     m.TotalPaid,
		Balance:       m.Balance,
		PaymentStatus: domain.BillPaymentStatus(m.PaymentStatus),
		DueDate:       m.DueDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillSlice converts a slice of model Bills to domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
