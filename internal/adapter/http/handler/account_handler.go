package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openmfi/loancore/internal/adapter/http/dto"
	"github.com/openmfi/loancore/internal/usecase"
)

// AccountHandler serves the chart of accounts. Accounts are reference data
// loaded by migration or ops tooling, so the handler only reads.
type AccountHandler struct {
	accounts usecase.AccountRepository
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts usecase.AccountRepository) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.accounts.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}
