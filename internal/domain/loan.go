package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan contract.
type LoanStatus string

const (
	LoanStatusActive     LoanStatus = "active"
	LoanStatusRepaid     LoanStatus = "repaid"
	LoanStatusWrittenOff LoanStatus = "written_off"
)

// Loan is a disbursed credit contract. Its installments carry the running
// repayment state; the loan itself holds the contract terms and the
// dimensions rule resolution matches on.
type Loan struct {
	DisbursedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ID               string
	ClientID         string
	ClientType       ClientType
	ProductType      ProductType
	Currency         string
	EconomicActivity string
	Status           LoanStatus
	Principal        Amount
	AnnualRate       decimal.Decimal
	Periods          int
}

// Validate checks the contract terms before a schedule is built.
func (l *Loan) Validate() error {
	if !l.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidSchedule, l.Principal)
	}

	if l.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate must not be negative", ErrInvalidSchedule)
	}

	if l.Periods < 1 {
		return fmt.Errorf("%w: at least one installment is required", ErrInvalidSchedule)
	}

	if err := ValidateCurrency(l.Currency); err != nil {
		return err
	}

	return nil
}

// Event builds a financial event context for one posting against the loan.
func (l *Loan) Event(t EventType, attr EventAttribute, method PaymentMethod, amount Amount, at time.Time) FinancialEvent {
	return FinancialEvent{
		OccurredAt:       at,
		Type:             t,
		Attribute:        attr,
		Direction:        BookingBoth,
		ProductType:      l.ProductType,
		Currency:         l.Currency,
		ClientType:       l.ClientType,
		EconomicActivity: l.EconomicActivity,
		PaymentMethod:    method,
		LoanID:           l.ID,
		Amount:           amount,
	}
}
