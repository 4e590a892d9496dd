package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
)

func TestCreateLoanRequest_ToUseCaseInput(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	disbursed := due.AddDate(0, -1, 0)

	req := &CreateLoanRequest{
		ClientID:         "client-1",
		ClientType:       "person",
		ProductType:      "loan",
		Currency:         "USD",
		EconomicActivity: "agriculture",
		Principal:        mustAmount(t, "1000"),
		AnnualRate:       decimal.RequireFromString("0.12"),
		Periods:          12,
		ScheduleMethod:   "flat",
		FirstDueDate:     due,
		InstallmentFee:   mustAmount(t, "5"),
		DisbursedAt:      &disbursed,
	}

	got := req.ToUseCaseInput()

	if got.ClientID != "client-1" || got.ClientType != domain.ClientTypePerson {
		t.Fatalf("client fields not mapped: %+v", got)
	}
	if got.ProductType != domain.ProductTypeLoan || got.Currency != "USD" {
		t.Fatalf("product fields not mapped: %+v", got)
	}
	if got.ScheduleMethod != domain.ScheduleFlat || got.Periods != 12 {
		t.Fatalf("schedule fields not mapped: %+v", got)
	}
	if !got.Principal.Equal(mustAmount(t, "1000")) {
		t.Fatalf("principal not mapped: %s", got.Principal)
	}
	if got.DisbursedAt == nil || !got.DisbursedAt.Equal(disbursed) {
		t.Fatalf("disbursed at not mapped: %v", got.DisbursedAt)
	}
}

func TestRepayRequest_ToUseCaseInput(t *testing.T) {
	eventAt := time.Now()

	req := &RepayRequest{
		Amount:        mustAmount(t, "150.50"),
		PaymentMethod: "cash",
		EventAt:       &eventAt,
	}

	got := req.ToUseCaseInput("loan-1")

	if got.LoanID != "loan-1" {
		t.Fatalf("expected loan ID to be set, got %q", got.LoanID)
	}
	if got.PaymentMethod != domain.PaymentMethodCash {
		t.Fatalf("payment method not mapped: %q", got.PaymentMethod)
	}
	if !got.Amount.Equal(mustAmount(t, "150.50")) {
		t.Fatalf("amount not mapped: %s", got.Amount)
	}
}

func TestCreateRuleRequest_ToUseCaseInput_KeepsWildcards(t *testing.T) {
	req := &CreateRuleRequest{
		DebitAccountID:  "acc-dr",
		CreditAccountID: "acc-cr",
		EventType:       "repayment",
		Order:           3,
	}

	got := req.ToUseCaseInput()

	if got.EventType != domain.EventTypeRepayment || got.Order != 3 {
		t.Fatalf("rule fields not mapped: %+v", got)
	}
	if got.EventAttribute != "" || got.Currency != "" || got.ClientType != "" {
		t.Fatalf("expected omitted dimensions to stay wildcards: %+v", got)
	}
}

func TestResolveRuleRequest_ToEvent(t *testing.T) {
	req := &ResolveRuleRequest{
		EventType:      "repayment",
		EventAttribute: "interest",
		Currency:       "EUR",
		ClientType:     "group",
	}

	event := req.ToEvent()

	if event.Type != domain.EventTypeRepayment || event.Attribute != domain.AttributeInterest {
		t.Fatalf("event fields not mapped: %+v", event)
	}
	if event.Currency != "EUR" || event.ClientType != domain.ClientTypeGroup {
		t.Fatalf("dimension fields not mapped: %+v", event)
	}
	if event.ProductType != "" || event.PaymentMethod != "" {
		t.Fatalf("expected omitted dimensions to stay empty: %+v", event)
	}
}

func mustAmount(t *testing.T, s string) domain.Amount {
	t.Helper()

	a, err := domain.AmountFromString(s)
	if err != nil {
		t.Fatalf("bad amount %q: %v", s, err)
	}

	return a
}
