package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that an operation is not permitted in the
// resource's current lifecycle state (voiding a void entry, reversing a
// non-posted entry, deleting a system or referenced account).
var ErrInvalidState = errors.New("operation not allowed in current state")

// ErrUnbalancedEntry indicates that a journal entry's debit and credit
// line sums are not exactly equal.
var ErrUnbalancedEntry = errors.New("journal entry debits and credits do not balance")

// ErrOverpayment indicates that a payment application exceeds the
// outstanding balance of the target bill.
var ErrOverpayment = errors.New("applied amount exceeds outstanding balance")
