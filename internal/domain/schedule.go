package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleMethod selects how interest is spread across installments.
type ScheduleMethod string

const (
	// ScheduleFlat charges the same interest on the full principal every
	// period.
	ScheduleFlat ScheduleMethod = "flat"
	// ScheduleAnnuity keeps the total installment constant, computing
	// interest on the declining balance.
	ScheduleAnnuity ScheduleMethod = "annuity"
)

// ScheduleParams configures the amortization schedule of a loan.
type ScheduleParams struct {
	FirstDueDate   time.Time
	Method         ScheduleMethod
	InstallmentFee Amount // flat fee charged on each installment; unset means no fees scheduled
}

// currencyScale is the rounding scale for scheduled amounts. Rounding
// remainders are pushed to the last installment so the schedule sums to the
// contract principal exactly.
const currencyScale = 2

// BuildSchedule creates the installments of a loan. Installments are
// numbered from 1 and due monthly starting at params.FirstDueDate.
func BuildSchedule(loan *Loan, params ScheduleParams) ([]*Installment, error) {
	if err := loan.Validate(); err != nil {
		return nil, err
	}

	if params.InstallmentFee.IsSet() && params.InstallmentFee.IsNegative() {
		return nil, fmt.Errorf("%w: installment fee must not be negative", ErrInvalidSchedule)
	}

	switch params.Method {
	case ScheduleFlat:
		return buildFlat(loan, params), nil
	case ScheduleAnnuity:
		return buildAnnuity(loan, params), nil
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidSchedule, params.Method)
	}
}

func buildFlat(loan *Loan, params ScheduleParams) []*Installment {
	principal := loan.Principal.Decimal()
	n := int64(loan.Periods)
	monthlyRate := loan.AnnualRate.Div(decimal.NewFromInt(12))

	interestPerPeriod := principal.Mul(monthlyRate).Round(currencyScale)
	principalPerPeriod := principal.Div(decimal.NewFromInt(n)).Round(currencyScale)

	installments := make([]*Installment, 0, loan.Periods)
	remaining := principal

	for k := 1; k <= loan.Periods; k++ {
		due := principalPerPeriod
		if k == loan.Periods {
			due = remaining
		}
		remaining = remaining.Sub(due)

		installments = append(installments, newScheduledInstallment(loan, params, k, due, interestPerPeriod))
	}

	return installments
}

func buildAnnuity(loan *Loan, params ScheduleParams) []*Installment {
	principal := loan.Principal.Decimal()
	n := int64(loan.Periods)
	monthlyRate := loan.AnnualRate.Div(decimal.NewFromInt(12))

	var payment decimal.Decimal
	if monthlyRate.IsZero() {
		payment = principal.Div(decimal.NewFromInt(n))
	} else {
		// payment = P * r / (1 - (1+r)^-n)
		onePlusR := decimal.NewFromInt(1).Add(monthlyRate)
		discount := decimal.NewFromInt(1).Sub(decimal.NewFromInt(1).Div(onePlusR.Pow(decimal.NewFromInt(n))))
		payment = principal.Mul(monthlyRate).Div(discount)
	}
	payment = payment.Round(currencyScale)

	installments := make([]*Installment, 0, loan.Periods)
	remaining := principal

	for k := 1; k <= loan.Periods; k++ {
		interest := remaining.Mul(monthlyRate).Round(currencyScale)

		var due decimal.Decimal
		if k == loan.Periods {
			due = remaining
		} else {
			due = payment.Sub(interest)
		}
		remaining = remaining.Sub(due)

		installments = append(installments, newScheduledInstallment(loan, params, k, due, interest))
	}

	return installments
}

func newScheduledInstallment(loan *Loan, params ScheduleParams, number int, principalDue, interestDue decimal.Decimal) *Installment {
	inst := &Installment{
		LoanID:          loan.ID,
		Number:          number,
		DueDate:         params.FirstDueDate.AddDate(0, number-1, 0),
		PrincipalUnpaid: NewAmount(principalDue),
		PaidPrincipal:   ZeroAmount(),
		InterestUnpaid:  NewAmount(interestDue),
		PaidInterest:    ZeroAmount(),
	}

	if params.InstallmentFee.IsSet() {
		inst.FeesUnpaid = params.InstallmentFee
		inst.PaidFees = ZeroAmount()
	}

	return inst
}
