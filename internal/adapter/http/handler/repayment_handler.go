package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openmfi/loancore/internal/adapter/http/dto"
	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// RepaymentService defines the behavior needed by RepaymentHandler.
type RepaymentService interface {
	Repay(ctx context.Context, input usecase.RepayInput) (*usecase.RepaymentResult, error)
	ListEntries(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error)
}

// RepaymentHandler handles repayment-related HTTP requests.
type RepaymentHandler struct {
	repaymentUC RepaymentService
}

// NewRepaymentHandler creates a new RepaymentHandler.
func NewRepaymentHandler(repaymentUC RepaymentService) *RepaymentHandler {
	return &RepaymentHandler{repaymentUC: repaymentUC}
}

// Create posts a repayment against a loan.
func (h *RepaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	var req dto.RepayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.repaymentUC.Repay(r.Context(), req.ToUseCaseInput(loanID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to post repayment", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.RepaymentFromUseCase(result))
}

// ListEntries lists the journal entries posted for a loan.
func (h *RepaymentHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if loanID == "" {
		writeError(w, http.StatusBadRequest, "missing loan ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	entries, err := h.repaymentUC.ListEntries(r.Context(), loanID, limit, offset)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}
