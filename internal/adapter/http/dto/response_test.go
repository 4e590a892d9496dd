package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

func TestLoanFromDomain(t *testing.T) {
	now := time.Now()
	loan := &domain.Loan{
		ID:         "loan-1",
		ClientID:   "client-1",
		ClientType: domain.ClientTypePerson,
		Currency:   "USD",
		Status:     domain.LoanStatusActive,
		Principal:  mustAmount(t, "1000"),
		AnnualRate: decimal.RequireFromString("0.12"),
		Periods:    12,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	resp := LoanFromDomain(loan)
	if resp.ID != loan.ID || resp.Status != "active" || resp.Periods != 12 {
		t.Fatalf("unexpected loan response: %+v", resp)
	}

	list := LoansFromDomain([]*domain.Loan{loan})
	if len(list) != 1 || list[0].ID != loan.ID {
		t.Fatalf("LoansFromDomain returned %+v", list)
	}
}

func TestInstallmentFromDomain_UnsetBucketsStayUnset(t *testing.T) {
	inst := &domain.Installment{
		ID:              "inst-1",
		LoanID:          "loan-1",
		Number:          1,
		PrincipalUnpaid: mustAmount(t, "100"),
		PaidPrincipal:   mustAmount(t, "0"),
		InterestUnpaid:  mustAmount(t, "10"),
		PaidInterest:    mustAmount(t, "0"),
	}

	resp := InstallmentFromDomain(inst)
	if resp.Number != 1 || !resp.PrincipalUnpaid.Equal(mustAmount(t, "100")) {
		t.Fatalf("unexpected installment response: %+v", resp)
	}

	if resp.FeesUnpaid.IsSet() || resp.PenaltyUnpaid.IsSet() {
		t.Fatalf("expected unscheduled buckets to stay unset: %+v", resp)
	}

	if resp.Settled {
		t.Fatal("expected installment with outstanding amounts to not be settled")
	}
}

func TestRuleFromDomain_ReportsSpecificity(t *testing.T) {
	rule := &domain.AccountingRule{
		ID:              "rule-1",
		DebitAccountID:  "acc-dr",
		CreditAccountID: "acc-cr",
		EventType:       domain.EventTypeRepayment,
		EventAttribute:  domain.AttributeInterest,
		Currency:        "USD",
		Order:           4,
	}

	resp := RuleFromDomain(rule)
	if resp.Specificity != 3 || resp.Order != 4 {
		t.Fatalf("unexpected rule response: %+v", resp)
	}

	if resp.ProductType != "" || resp.ClientType != "" {
		t.Fatalf("expected wildcard dimensions to serialize empty: %+v", resp)
	}
}

func TestRepaymentFromUseCase(t *testing.T) {
	result := &usecase.RepaymentResult{
		Entries: []*domain.JournalEntry{
			{
				ID:             "entry-1",
				LoanID:         "loan-1",
				RuleID:         "rule-1",
				EventType:      domain.EventTypeRepayment,
				EventAttribute: domain.AttributeInterest,
				Amount:         decimal.RequireFromString("40"),
			},
		},
		Allocations: []usecase.InstallmentAllocation{
			{
				InstallmentID: "inst-1",
				Number:        1,
				Result: domain.AllocationResult{
					Buckets: []domain.BucketAllocation{
						{Kind: domain.BucketInterest, Consumed: mustAmount(t, "40")},
					},
					Residual: mustAmount(t, "0"),
				},
			},
		},
		Unallocated: mustAmount(t, "0"),
		LoanSettled: true,
	}

	resp := RepaymentFromUseCase(result)

	if len(resp.Entries) != 1 || resp.Entries[0].ID != "entry-1" {
		t.Fatalf("entries not mapped: %+v", resp.Entries)
	}
	if len(resp.Allocations) != 1 || resp.Allocations[0].InstallmentID != "inst-1" {
		t.Fatalf("allocations not mapped: %+v", resp.Allocations)
	}
	if resp.Allocations[0].Buckets[0].Bucket != "interest" {
		t.Fatalf("bucket kind not mapped: %+v", resp.Allocations[0].Buckets)
	}
	if !resp.LoanSettled {
		t.Fatal("expected loan settled flag to carry over")
	}
}

func TestEntryFromDomain(t *testing.T) {
	entry := &domain.JournalEntry{
		ID:              "entry-1",
		LoanID:          "loan-1",
		RuleID:          "rule-1",
		EventType:       domain.EventTypeRepayment,
		EventAttribute:  domain.AttributePrincipal,
		Direction:       domain.BookingBoth,
		DebitAccountID:  "acc-dr",
		CreditAccountID: "acc-cr",
		Amount:          decimal.RequireFromString("540"),
		CreatedAt:       time.Now(),
	}

	resp := EntryFromDomain(entry)
	if resp.EventAttribute != "principal" || !resp.Amount.Equal(entry.Amount) {
		t.Fatalf("unexpected entry response: %+v", resp)
	}

	list := EntriesFromDomain([]*domain.JournalEntry{entry})
	if len(list) != 1 || list[0].ID != entry.ID {
		t.Fatalf("EntriesFromDomain returned %+v", list)
	}
}
