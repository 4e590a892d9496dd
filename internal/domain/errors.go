package domain

import "errors"

var (
	// Monetary errors
	ErrAmountUnset          = errors.New("monetary amount is unset")
	ErrInvalidPaymentAmount = errors.New("payment amount must be a set, non-negative value")

	// Rule resolution errors
	ErrNoMatchingRule     = errors.New("no accounting rule matches the event")
	ErrAmbiguousRuleMatch = errors.New("accounting rule match is ambiguous")
	ErrInvalidRule        = errors.New("invalid accounting rule")

	// Lookup errors
	ErrLoanNotFound        = errors.New("loan not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrRuleNotFound        = errors.New("accounting rule not found")
	ErrAccountNotFound     = errors.New("account not found")

	// Loan errors
	ErrLoanNotActive   = errors.New("loan is not active")
	ErrInvalidSchedule = errors.New("invalid schedule parameters")
)
