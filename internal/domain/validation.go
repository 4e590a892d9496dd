package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
)

// MaxPaymentAmount bounds a single repayment; anything larger is a data
// entry mistake, not a payment.
const MaxPaymentAmount = "1000000000000" // 1 trillion

// Valid currency codes (ISO 4217)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
	"KES": true, "UGX": true, "TZS": true, "XOF": true,
}

// ValidateCurrency validates a currency code.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidatePayment validates a repayment amount against the engine's input
// contract: it must be set, non-negative and within bounds.
func ValidatePayment(amount Amount) error {
	if !amount.IsSet() || amount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidPaymentAmount, amount)
	}

	max, _ := AmountFromString(MaxPaymentAmount)
	if cmp, _ := amount.Cmp(max); cmp > 0 {
		return fmt.Errorf("%w: maximum is %s", ErrAmountTooLarge, MaxPaymentAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
