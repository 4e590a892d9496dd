package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	ClientType       string          `json:"client_type"`
	ProductType      string          `json:"product_type"`
	Currency         string          `json:"currency"`
	EconomicActivity string          `json:"economic_activity,omitempty"`
	Status           string          `json:"status"`
	Principal        domain.Amount   `json:"principal"`
	AnnualRate       decimal.Decimal `json:"annual_rate"`
	Periods          int             `json:"periods"`
	DisbursedAt      time.Time       `json:"disbursed_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// LoanFromDomain converts a domain loan to a response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:               l.ID,
		ClientID:         l.ClientID,
		ClientType:       string(l.ClientType),
		ProductType:      string(l.ProductType),
		Currency:         l.Currency,
		EconomicActivity: l.EconomicActivity,
		Status:           string(l.Status),
		Principal:        l.Principal,
		AnnualRate:       l.AnnualRate,
		Periods:          l.Periods,
		DisbursedAt:      l.DisbursedAt,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// LoansFromDomain converts domain loans to responses.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	result := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = LoanFromDomain(l)
	}
	return result
}

// InstallmentResponse represents one schedule installment. Bucket fields
// serialize as null when the charge was never scheduled.
type InstallmentResponse struct {
	ID              string        `json:"id,omitempty"`
	LoanID          string        `json:"loan_id,omitempty"`
	Number          int           `json:"number"`
	DueDate         time.Time     `json:"due_date"`
	PrincipalUnpaid domain.Amount `json:"principal_unpaid"`
	PaidPrincipal   domain.Amount `json:"paid_principal"`
	InterestUnpaid  domain.Amount `json:"interest_unpaid"`
	PaidInterest    domain.Amount `json:"paid_interest"`
	FeesUnpaid      domain.Amount `json:"fees_unpaid"`
	PaidFees        domain.Amount `json:"paid_fees"`
	PenaltyUnpaid   domain.Amount `json:"penalty_unpaid"`
	PaidPenalty     domain.Amount `json:"paid_penalty"`
	Settled         bool          `json:"settled"`
}

// InstallmentFromDomain converts a domain installment to a response.
func InstallmentFromDomain(inst *domain.Installment) *InstallmentResponse {
	return &InstallmentResponse{
		ID:              inst.ID,
		LoanID:          inst.LoanID,
		Number:          inst.Number,
		DueDate:         inst.DueDate,
		PrincipalUnpaid: inst.PrincipalUnpaid,
		PaidPrincipal:   inst.PaidPrincipal,
		InterestUnpaid:  inst.InterestUnpaid,
		PaidInterest:    inst.PaidInterest,
		FeesUnpaid:      inst.FeesUnpaid,
		PaidFees:        inst.PaidFees,
		PenaltyUnpaid:   inst.PenaltyUnpaid,
		PaidPenalty:     inst.PaidPenalty,
		Settled:         inst.IsSettled(),
	}
}

// InstallmentsFromDomain converts domain installments to responses.
func InstallmentsFromDomain(installments []*domain.Installment) []*InstallmentResponse {
	result := make([]*InstallmentResponse, len(installments))
	for i, inst := range installments {
		result[i] = InstallmentFromDomain(inst)
	}
	return result
}

// LoanWithScheduleResponse bundles a loan with its installments.
type LoanWithScheduleResponse struct {
	Loan         *LoanResponse          `json:"loan"`
	Installments []*InstallmentResponse `json:"installments"`
}

// LoanWithScheduleFromUseCase converts a use case result to a response.
func LoanWithScheduleFromUseCase(ls *usecase.LoanWithSchedule) *LoanWithScheduleResponse {
	return &LoanWithScheduleResponse{
		Loan:         LoanFromDomain(ls.Loan),
		Installments: InstallmentsFromDomain(ls.Installments),
	}
}

// RuleResponse represents an accounting rule in API responses.
type RuleResponse struct {
	ID               string    `json:"id"`
	DebitAccountID   string    `json:"debit_account_id"`
	CreditAccountID  string    `json:"credit_account_id"`
	Description      string    `json:"description,omitempty"`
	Direction        string    `json:"direction,omitempty"`
	EventType        string    `json:"event_type,omitempty"`
	EventAttribute   string    `json:"event_attribute,omitempty"`
	ProductType      string    `json:"product_type,omitempty"`
	Currency         string    `json:"currency,omitempty"`
	ClientType       string    `json:"client_type,omitempty"`
	EconomicActivity string    `json:"economic_activity,omitempty"`
	PaymentMethod    string    `json:"payment_method,omitempty"`
	Order            int       `json:"order"`
	Specificity      int       `json:"specificity"`
	Deleted          bool      `json:"deleted,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RuleFromDomain converts a domain rule to a response.
func RuleFromDomain(r *domain.AccountingRule) *RuleResponse {
	return &RuleResponse{
		ID:               r.ID,
		DebitAccountID:   r.DebitAccountID,
		CreditAccountID:  r.CreditAccountID,
		Description:      r.Description,
		Direction:        string(r.Direction),
		EventType:        string(r.EventType),
		EventAttribute:   string(r.EventAttribute),
		ProductType:      string(r.ProductType),
		Currency:         r.Currency,
		ClientType:       string(r.ClientType),
		EconomicActivity: r.EconomicActivity,
		PaymentMethod:    string(r.PaymentMethod),
		Order:            r.Order,
		Specificity:      r.Specificity(),
		Deleted:          r.Deleted,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// RulesFromDomain converts domain rules to responses.
func RulesFromDomain(rules []*domain.AccountingRule) []*RuleResponse {
	result := make([]*RuleResponse, len(rules))
	for i, r := range rules {
		result[i] = RuleFromDomain(r)
	}
	return result
}

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID              string          `json:"id"`
	LoanID          string          `json:"loan_id"`
	RuleID          string          `json:"rule_id"`
	EventType       string          `json:"event_type"`
	EventAttribute  string          `json:"event_attribute"`
	Direction       string          `json:"direction"`
	DebitAccountID  string          `json:"debit_account_id"`
	CreditAccountID string          `json:"credit_account_id"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain journal entry to a response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	return &EntryResponse{
		ID:              e.ID,
		LoanID:          e.LoanID,
		RuleID:          e.RuleID,
		EventType:       string(e.EventType),
		EventAttribute:  string(e.EventAttribute),
		Direction:       string(e.Direction),
		DebitAccountID:  e.DebitAccountID,
		CreditAccountID: e.CreditAccountID,
		Amount:          e.Amount,
		CreatedAt:       e.CreatedAt,
	}
}

// EntriesFromDomain converts domain journal entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// BucketAllocationResponse reports how much one charge bucket absorbed.
type BucketAllocationResponse struct {
	Bucket   string        `json:"bucket"`
	Consumed domain.Amount `json:"consumed"`
}

// InstallmentAllocationResponse reports one installment's share of a payment.
type InstallmentAllocationResponse struct {
	InstallmentID string                     `json:"installment_id"`
	Number        int                        `json:"number"`
	Buckets       []BucketAllocationResponse `json:"buckets"`
	Residual      domain.Amount              `json:"residual"`
}

// RepaymentResponse is the outcome of posting one repayment.
type RepaymentResponse struct {
	Entries     []*EntryResponse                `json:"entries"`
	Allocations []InstallmentAllocationResponse `json:"allocations"`
	Unallocated domain.Amount                   `json:"unallocated"`
	LoanSettled bool                            `json:"loan_settled"`
}

// RepaymentFromUseCase converts a use case repayment result to a response.
func RepaymentFromUseCase(res *usecase.RepaymentResult) *RepaymentResponse {
	allocations := make([]InstallmentAllocationResponse, len(res.Allocations))
	for i, a := range res.Allocations {
		buckets := make([]BucketAllocationResponse, len(a.Result.Buckets))
		for j, b := range a.Result.Buckets {
			buckets[j] = BucketAllocationResponse{
				Bucket:   string(b.Kind),
				Consumed: b.Consumed,
			}
		}
		allocations[i] = InstallmentAllocationResponse{
			InstallmentID: a.InstallmentID,
			Number:        a.Number,
			Buckets:       buckets,
			Residual:      a.Result.Residual,
		}
	}

	return &RepaymentResponse{
		Entries:     EntriesFromDomain(res.Entries),
		Allocations: allocations,
		Unallocated: res.Unallocated,
		LoanSettled: res.LoanSettled,
	}
}

// AccountResponse represents a general-ledger account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Label     string    `json:"label"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Number:    a.Number,
		Label:     a.Label,
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
