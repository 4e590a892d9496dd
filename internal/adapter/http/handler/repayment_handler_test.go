package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/adapter/http/dto"
	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

type repaymentServiceStub struct {
	repayFn       func(ctx context.Context, input usecase.RepayInput) (*usecase.RepaymentResult, error)
	listEntriesFn func(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error)
}

func (s *repaymentServiceStub) Repay(ctx context.Context, input usecase.RepayInput) (*usecase.RepaymentResult, error) {
	return s.repayFn(ctx, input)
}

func (s *repaymentServiceStub) ListEntries(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error) {
	return s.listEntriesFn(ctx, loanID, limit, offset)
}

func repayRequest(t *testing.T, loanID string, body []byte) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/loans/"+loanID+"/repayments", bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", loanID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRepaymentHandler_Create_Success(t *testing.T) {
	var captured usecase.RepayInput
	handler := NewRepaymentHandler(&repaymentServiceStub{
		repayFn: func(ctx context.Context, input usecase.RepayInput) (*usecase.RepaymentResult, error) {
			captured = input
			return &usecase.RepaymentResult{
				Entries: []*domain.JournalEntry{
					{ID: "entry-1", LoanID: input.LoanID, Amount: decimal.RequireFromString("100")},
				},
				Unallocated: testAmount(t, "0"),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.RepayRequest{
		Amount:        testAmount(t, "100"),
		PaymentMethod: "cash",
	})

	rec := httptest.NewRecorder()
	handler.Create(rec, repayRequest(t, "loan-1", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.LoanID != "loan-1" || captured.PaymentMethod != domain.PaymentMethodCash {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.RepaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].ID != "entry-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRepaymentHandler_Create_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"loan not found", domain.ErrLoanNotFound, http.StatusNotFound},
		{"loan not active", domain.ErrLoanNotActive, http.StatusConflict},
		{"no matching rule", domain.ErrNoMatchingRule, http.StatusUnprocessableEntity},
		{"ambiguous rules", domain.ErrAmbiguousRuleMatch, http.StatusConflict},
		{"invalid payment", domain.ErrInvalidPaymentAmount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRepaymentHandler(&repaymentServiceStub{
				repayFn: func(ctx context.Context, input usecase.RepayInput) (*usecase.RepaymentResult, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.RepayRequest{Amount: testAmount(t, "100")})
			rec := httptest.NewRecorder()
			handler.Create(rec, repayRequest(t, "loan-1", body))

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}

func TestRepaymentHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewRepaymentHandler(&repaymentServiceStub{
		repayFn: func(ctx context.Context, input usecase.RepayInput) (*usecase.RepaymentResult, error) {
			t.Fatal("Repay should not be called for invalid payload")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Create(rec, repayRequest(t, "loan-1", []byte("{invalid json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRepaymentHandler_ListEntries(t *testing.T) {
	handler := NewRepaymentHandler(&repaymentServiceStub{
		listEntriesFn: func(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error) {
			if loanID != "loan-1" {
				t.Fatalf("unexpected loan ID %q", loanID)
			}
			return []*domain.JournalEntry{
				{ID: "entry-1", LoanID: loanID, Amount: decimal.RequireFromString("40")},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/loans/loan-1/entries", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "loan-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.ListEntries(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "entry-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
