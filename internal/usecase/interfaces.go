package usecase

import (
	"context"
	"time"

	"github.com/openmfi/loancore/internal/domain"
)

// LoanRepository defines data access for loans.
type LoanRepository interface {
	Create(ctx context.Context, tx Transaction, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.LoanStatus, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Loan, error)
}

// InstallmentRepository defines data access for installments.
type InstallmentRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, installments []*domain.Installment) error
	ListByLoan(ctx context.Context, loanID string) ([]*domain.Installment, error)
	ListByLoanForUpdate(ctx context.Context, tx Transaction, loanID string) ([]*domain.Installment, error)
	UpdateBuckets(ctx context.Context, tx Transaction, installment *domain.Installment, updatedAt time.Time) error
}

// RuleRepository defines data access for accounting rules.
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AccountingRule) error
	GetByID(ctx context.Context, id string) (*domain.AccountingRule, error)
	ListActive(ctx context.Context) ([]*domain.AccountingRule, error)
	SoftDelete(ctx context.Context, id string, deletedAt time.Time) error
}

// JournalRepository defines data access for journal entries.
type JournalRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, entries []*domain.JournalEntry) error
	ListByLoan(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error)
}

// AccountRepository defines data access for general-ledger accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// RuleProvider supplies a consistent read-only snapshot of the active rule
// table for the duration of one resolution pass.
type RuleProvider interface {
	ActiveRules(ctx context.Context) ([]*domain.AccountingRule, error)
}

// RuleSnapshotCache caches the active rule table between edits.
type RuleSnapshotCache interface {
	Get(ctx context.Context) ([]*domain.AccountingRule, bool, error)
	Set(ctx context.Context, rules []*domain.AccountingRule, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
