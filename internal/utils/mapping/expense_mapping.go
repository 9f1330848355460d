package mapping

import (
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:         d.ExpenseID,
		VendorID:          d.VendorID,
		Description:       d.Description,
		ExpenseAmount:     d.ExpenseAmount,
		ServiceCharge:     d.ServiceCharge,
		WhtRate:           d.WhtRate,
		WhtAmount:         d.WhtAmount,
		NetPayment:        d.NetPayment,
		Status:            string(d.Status),
		PaymentStatus:     string(d.PaymentStatus),
		ExpenseAccountID:  d.ExpenseAccountID,
		PaidFromAccountID: d.PaidFromAccountID,
		PaidDate:          d.PaidDate,
		ReviewedBy:        d.ReviewedBy,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:         m.ExpenseID,
		VendorID:          m.VendorID,
		Description:       m.Description,
		ExpenseAmount:     m.ExpenseAmount,
		ServiceCharge:     m.ServiceCharge,
		WhtRate:           m.WhtRate,
		WhtAmount:         m.WhtAmount,
		NetPayment:        m.NetPayment,
		Status:            domain.ExpenseStatus(m.Status),
		PaymentStatus:     domain.ExpensePaymentStatus(m.PaymentStatus),
		ExpenseAccountID:  m.ExpenseAccountID,
		PaidFromAccountID: m.PaidFromAccountID,
		PaidDate:          m.PaidDate,
		ReviewedBy:        m.ReviewedBy,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
