package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// CreateLoanRequest represents a request to create a loan contract.
type CreateLoanRequest struct {
	ClientID         string          `json:"client_id"`
	ClientType       string          `json:"client_type"`
	ProductType      string          `json:"product_type"`
	Currency         string          `json:"currency"`
	EconomicActivity string          `json:"economic_activity,omitempty"`
	Principal        domain.Amount   `json:"principal"`
	AnnualRate       decimal.Decimal `json:"annual_rate"`
	Periods          int             `json:"periods"`
	ScheduleMethod   string          `json:"schedule_method"`
	FirstDueDate     time.Time       `json:"first_due_date"`
	InstallmentFee   domain.Amount   `json:"installment_fee,omitempty"`
	DisbursedAt      *time.Time      `json:"disbursed_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoanRequest) ToUseCaseInput() usecase.CreateLoanInput {
	return usecase.CreateLoanInput{
		ClientID:         r.ClientID,
		ClientType:       domain.ClientType(r.ClientType),
		ProductType:      domain.ProductType(r.ProductType),
		Currency:         r.Currency,
		EconomicActivity: r.EconomicActivity,
		Principal:        r.Principal,
		AnnualRate:       r.AnnualRate,
		Periods:          r.Periods,
		ScheduleMethod:   domain.ScheduleMethod(r.ScheduleMethod),
		FirstDueDate:     r.FirstDueDate,
		InstallmentFee:   r.InstallmentFee,
		DisbursedAt:      r.DisbursedAt,
	}
}

// PreviewScheduleRequest represents a request for a schedule dry run.
type PreviewScheduleRequest struct {
	Currency       string          `json:"currency"`
	Principal      domain.Amount   `json:"principal"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	Periods        int             `json:"periods"`
	ScheduleMethod string          `json:"schedule_method"`
	FirstDueDate   time.Time       `json:"first_due_date"`
	InstallmentFee domain.Amount   `json:"installment_fee,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *PreviewScheduleRequest) ToUseCaseInput() usecase.PreviewScheduleInput {
	return usecase.PreviewScheduleInput{
		Currency:       r.Currency,
		Principal:      r.Principal,
		AnnualRate:     r.AnnualRate,
		Periods:        r.Periods,
		ScheduleMethod: domain.ScheduleMethod(r.ScheduleMethod),
		FirstDueDate:   r.FirstDueDate,
		InstallmentFee: r.InstallmentFee,
	}
}

// RepayRequest represents a request to post a repayment against a loan.
type RepayRequest struct {
	Amount        domain.Amount `json:"amount"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	EventAt       *time.Time    `json:"event_at,omitempty"`
}

// ToUseCaseInput converts to use case input for the given loan.
func (r *RepayRequest) ToUseCaseInput(loanID string) usecase.RepayInput {
	return usecase.RepayInput{
		LoanID:        loanID,
		Amount:        r.Amount,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		EventAt:       r.EventAt,
	}
}

// CreateRuleRequest represents a request to create an accounting rule.
// Omitted dimensions stay wildcards.
type CreateRuleRequest struct {
	DebitAccountID   string `json:"debit_account_id"`
	CreditAccountID  string `json:"credit_account_id"`
	Description      string `json:"description,omitempty"`
	Direction        string `json:"direction,omitempty"`
	EventType        string `json:"event_type,omitempty"`
	EventAttribute   string `json:"event_attribute,omitempty"`
	ProductType      string `json:"product_type,omitempty"`
	Currency         string `json:"currency,omitempty"`
	ClientType       string `json:"client_type,omitempty"`
	EconomicActivity string `json:"economic_activity,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	Order            int    `json:"order"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRuleRequest) ToUseCaseInput() usecase.CreateRuleInput {
	return usecase.CreateRuleInput{
		DebitAccountID:   r.DebitAccountID,
		CreditAccountID:  r.CreditAccountID,
		Description:      r.Description,
		Direction:        domain.BookingDirection(r.Direction),
		EventType:        domain.EventType(r.EventType),
		EventAttribute:   domain.EventAttribute(r.EventAttribute),
		ProductType:      domain.ProductType(r.ProductType),
		Currency:         r.Currency,
		ClientType:       domain.ClientType(r.ClientType),
		EconomicActivity: r.EconomicActivity,
		PaymentMethod:    domain.PaymentMethod(r.PaymentMethod),
		Order:            r.Order,
	}
}

// ResolveRuleRequest describes a hypothetical financial event for a dry-run
// rule resolution.
type ResolveRuleRequest struct {
	EventType        string `json:"event_type"`
	EventAttribute   string `json:"event_attribute,omitempty"`
	Direction        string `json:"direction,omitempty"`
	ProductType      string `json:"product_type,omitempty"`
	Currency         string `json:"currency,omitempty"`
	ClientType       string `json:"client_type,omitempty"`
	EconomicActivity string `json:"economic_activity,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
}

// ToEvent converts the request to a financial event.
func (r *ResolveRuleRequest) ToEvent() domain.FinancialEvent {
	return domain.FinancialEvent{
		Type:             domain.EventType(r.EventType),
		Attribute:        domain.EventAttribute(r.EventAttribute),
		Direction:        domain.BookingDirection(r.Direction),
		ProductType:      domain.ProductType(r.ProductType),
		Currency:         r.Currency,
		ClientType:       domain.ClientType(r.ClientType),
		EconomicActivity: r.EconomicActivity,
		PaymentMethod:    domain.PaymentMethod(r.PaymentMethod),
	}
}
