package accounting

import (
	"fmt"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/apperrors"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a line amount based on
// account type and line type. Used in both services and repositories so
// balance arithmetic stays consistent.
func CalculateSignedAmount(line domain.JournalEntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount
	isDebit := line.LineType == domain.Debit

	// Sign convention:
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.ExpenseType:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	return signedAmount, nil
}

// SumLines returns the debit and credit totals of a line set.
func SumLines(lines []domain.JournalEntryLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		if line.LineType == domain.Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	return debits, credits
}

// ValidateEntryBalance checks that a line set forms a valid double entry:
// at least two lines, every amount strictly positive, and debit and credit
// sums exactly equal. No tolerance is applied.
func ValidateEntryBalance(lines []domain.JournalEntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}

	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line amount must be positive for account %s", apperrors.ErrValidation, line.AccountID)
		}
	}

	debits, credits := SumLines(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalancedEntry, debits.String(), credits.String())
	}
	return nil
}

// WithholdingResult holds the outcome of a withholding-tax computation.
type WithholdingResult struct {
	WhtAmount  decimal.Decimal
	NetPayment decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// CalculateWithholding computes withholding tax for a vendor payment.
// WHT is levied on the service-charge portion only, not the full expense
// amount: whtAmount = serviceCharge * whtRate / 100, and
// netPayment = expenseAmount + serviceCharge - whtAmount.
func CalculateWithholding(expenseAmount, serviceCharge, whtRate decimal.Decimal) (WithholdingResult, error) {
	if whtRate.IsNegative() || whtRate.GreaterThan(oneHundred) {
		return WithholdingResult{}, fmt.Errorf("%w: withholding rate must be between 0 and 100, got %s", apperrors.ErrValidation, whtRate.String())
	}
	if serviceCharge.IsNegative() {
		return WithholdingResult{}, fmt.Errorf("%w: service charge must not be negative, got %s", apperrors.ErrValidation, serviceCharge.String())
	}
	if expenseAmount.IsNegative() {
		return WithholdingResult{}, fmt.Errorf("%w: expense amount must not be negative, got %s", apperrors.ErrValidation, expenseAmount.String())
	}

	whtAmount := serviceCharge.Mul(whtRate).Div(oneHundred)
	netPayment := expenseAmount.Add(serviceCharge).Sub(whtAmount)
	return WithholdingResult{WhtAmount: whtAmount, NetPayment: netPayment}, nil
}
