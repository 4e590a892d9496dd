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

// RuleService defines the behavior needed by RuleHandler.
type RuleService interface {
	CreateRule(ctx context.Context, input usecase.CreateRuleInput) (*domain.AccountingRule, error)
	DeleteRule(ctx context.Context, id string) error
	GetRule(ctx context.Context, id string) (*domain.AccountingRule, error)
	ListRules(ctx context.Context) ([]*domain.AccountingRule, error)
	Resolve(ctx context.Context, event domain.FinancialEvent) (*domain.AccountingRule, error)
}

// RuleHandler handles accounting-rule HTTP requests.
type RuleHandler struct {
	ruleUC RuleService
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(ruleUC RuleService) *RuleHandler {
	return &RuleHandler{ruleUC: ruleUC}
}

// Create creates a new accounting rule.
func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rule, err := h.ruleUC.CreateRule(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create rule", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.RuleFromDomain(rule))
}

// Get retrieves a rule by ID.
func (h *RuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rule ID", "")
		return
	}

	rule, err := h.ruleUC.GetRule(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get rule", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.RuleFromDomain(rule))
}

// List lists the active rules.
func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleUC.ListRules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list rules", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RulesFromDomain(rules))
}

// Delete soft-deletes a rule.
func (h *RuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rule ID", "")
		return
	}

	if err := h.ruleUC.DeleteRule(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete rule", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Resolve runs a dry-run resolution for a hypothetical event.
func (h *RuleHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rule, err := h.ruleUC.Resolve(r.Context(), req.ToEvent())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to resolve rule", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.RuleFromDomain(rule))
}
