package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/openmfi/loancore/internal/adapter/http/dto"
	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

type ruleServiceStub struct {
	createFn  func(ctx context.Context, input usecase.CreateRuleInput) (*domain.AccountingRule, error)
	deleteFn  func(ctx context.Context, id string) error
	getFn     func(ctx context.Context, id string) (*domain.AccountingRule, error)
	listFn    func(ctx context.Context) ([]*domain.AccountingRule, error)
	resolveFn func(ctx context.Context, event domain.FinancialEvent) (*domain.AccountingRule, error)
}

func (s *ruleServiceStub) CreateRule(ctx context.Context, input usecase.CreateRuleInput) (*domain.AccountingRule, error) {
	return s.createFn(ctx, input)
}

func (s *ruleServiceStub) DeleteRule(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *ruleServiceStub) GetRule(ctx context.Context, id string) (*domain.AccountingRule, error) {
	return s.getFn(ctx, id)
}

func (s *ruleServiceStub) ListRules(ctx context.Context) ([]*domain.AccountingRule, error) {
	return s.listFn(ctx)
}

func (s *ruleServiceStub) Resolve(ctx context.Context, event domain.FinancialEvent) (*domain.AccountingRule, error) {
	return s.resolveFn(ctx, event)
}

func TestRuleHandler_Create_Success(t *testing.T) {
	var captured usecase.CreateRuleInput
	handler := NewRuleHandler(&ruleServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateRuleInput) (*domain.AccountingRule, error) {
			captured = input
			return &domain.AccountingRule{
				ID:              "rule-1",
				DebitAccountID:  input.DebitAccountID,
				CreditAccountID: input.CreditAccountID,
				EventType:       input.EventType,
			}, nil
		},
	})

	body, _ := json.Marshal(dto.CreateRuleRequest{
		DebitAccountID:  "acc-dr",
		CreditAccountID: "acc-cr",
		EventType:       "repayment",
		Order:           1,
	})

	req := httptest.NewRequest(http.MethodPost, "/rules", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.DebitAccountID != "acc-dr" || captured.EventType != domain.EventTypeRepayment {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.RuleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "rule-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRuleHandler_Create_InvalidRule(t *testing.T) {
	handler := NewRuleHandler(&ruleServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateRuleInput) (*domain.AccountingRule, error) {
			return nil, domain.ErrInvalidRule
		},
	})

	body, _ := json.Marshal(dto.CreateRuleRequest{DebitAccountID: "same", CreditAccountID: "same"})
	req := httptest.NewRequest(http.MethodPost, "/rules", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRuleHandler_Delete(t *testing.T) {
	var deleted string
	handler := NewRuleHandler(&ruleServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/rules/rule-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "rule-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if deleted != "rule-1" {
		t.Fatalf("expected rule-1 to be deleted, got %q", deleted)
	}
}

func TestRuleHandler_Resolve_Success(t *testing.T) {
	var captured domain.FinancialEvent
	handler := NewRuleHandler(&ruleServiceStub{
		resolveFn: func(ctx context.Context, event domain.FinancialEvent) (*domain.AccountingRule, error) {
			captured = event
			return &domain.AccountingRule{ID: "rule-1", EventType: event.Type}, nil
		},
	})

	body, _ := json.Marshal(dto.ResolveRuleRequest{
		EventType:      "repayment",
		EventAttribute: "interest",
		Currency:       "USD",
	})

	req := httptest.NewRequest(http.MethodPost, "/rules/resolve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Resolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Type != domain.EventTypeRepayment || captured.Currency != "USD" {
		t.Fatalf("expected event to match request, got %+v", captured)
	}
}

func TestRuleHandler_Resolve_NoMatch(t *testing.T) {
	handler := NewRuleHandler(&ruleServiceStub{
		resolveFn: func(ctx context.Context, event domain.FinancialEvent) (*domain.AccountingRule, error) {
			return nil, domain.ErrNoMatchingRule
		},
	})

	body, _ := json.Marshal(dto.ResolveRuleRequest{EventType: "write_off"})
	req := httptest.NewRequest(http.MethodPost, "/rules/resolve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Resolve(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestRuleHandler_List(t *testing.T) {
	handler := NewRuleHandler(&ruleServiceStub{
		listFn: func(ctx context.Context) ([]*domain.AccountingRule, error) {
			return []*domain.AccountingRule{{ID: "rule-1"}, {ID: "rule-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/rules", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.RuleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(resp))
	}
}
