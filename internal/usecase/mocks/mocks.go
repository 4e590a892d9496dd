package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// MockTransaction is a mock implementation of usecase.Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of usecase.TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockLoanRepository is a mock implementation of usecase.LoanRepository.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[string]*domain.Loan

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error)
	UpdateStatusFunc     func(ctx context.Context, tx usecase.Transaction, id string, status domain.LoanStatus, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Loan, error)

	StatusUpdates []domain.LoanStatus
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{loans: make(map[string]*domain.Loan)}
}

func (m *MockLoanRepository) Put(loan *domain.Loan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[loan.ID] = loan
}

func (m *MockLoanRepository) Create(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, loan)
	}
	m.Put(loan)
	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if loan, ok := m.loans[id]; ok {
		return loan, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockLoanRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.LoanStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if loan, ok := m.loans[id]; ok {
		loan.Status = status
		loan.UpdatedAt = updatedAt
	}
	m.StatusUpdates = append(m.StatusUpdates, status)
	return nil
}

func (m *MockLoanRepository) List(ctx context.Context, limit, offset int) ([]*domain.Loan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	loans := make([]*domain.Loan, 0, len(m.loans))
	for _, loan := range m.loans {
		loans = append(loans, loan)
	}
	return loans, nil
}

// MockInstallmentRepository is a mock implementation of usecase.InstallmentRepository.
type MockInstallmentRepository struct {
	mu           sync.RWMutex
	installments map[string][]*domain.Installment

	CreateBatchFunc         func(ctx context.Context, tx usecase.Transaction, installments []*domain.Installment) error
	ListByLoanFunc          func(ctx context.Context, loanID string) ([]*domain.Installment, error)
	ListByLoanForUpdateFunc func(ctx context.Context, tx usecase.Transaction, loanID string) ([]*domain.Installment, error)
	UpdateBucketsFunc       func(ctx context.Context, tx usecase.Transaction, installment *domain.Installment, updatedAt time.Time) error

	Updated []*domain.Installment
}

func NewMockInstallmentRepository() *MockInstallmentRepository {
	return &MockInstallmentRepository{installments: make(map[string][]*domain.Installment)}
}

func (m *MockInstallmentRepository) Put(loanID string, installments ...*domain.Installment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.installments[loanID] = append(m.installments[loanID], installments...)
}

func (m *MockInstallmentRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, installments []*domain.Installment) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, installments)
	}
	if len(installments) > 0 {
		m.Put(installments[0].LoanID, installments...)
	}
	return nil
}

func (m *MockInstallmentRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Installment, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.installments[loanID], nil
}

func (m *MockInstallmentRepository) ListByLoanForUpdate(ctx context.Context, tx usecase.Transaction, loanID string) ([]*domain.Installment, error) {
	if m.ListByLoanForUpdateFunc != nil {
		return m.ListByLoanForUpdateFunc(ctx, tx, loanID)
	}
	return m.ListByLoan(ctx, loanID)
}

func (m *MockInstallmentRepository) UpdateBuckets(ctx context.Context, tx usecase.Transaction, installment *domain.Installment, updatedAt time.Time) error {
	if m.UpdateBucketsFunc != nil {
		return m.UpdateBucketsFunc(ctx, tx, installment, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updated = append(m.Updated, installment)
	return nil
}

// MockRuleRepository is a mock implementation of usecase.RuleRepository.
type MockRuleRepository struct {
	mu    sync.RWMutex
	rules map[string]*domain.AccountingRule

	CreateFunc     func(ctx context.Context, rule *domain.AccountingRule) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.AccountingRule, error)
	ListActiveFunc func(ctx context.Context) ([]*domain.AccountingRule, error)
	SoftDeleteFunc func(ctx context.Context, id string, deletedAt time.Time) error

	ListActiveCalls int
}

func NewMockRuleRepository() *MockRuleRepository {
	return &MockRuleRepository{rules: make(map[string]*domain.AccountingRule)}
}

func (m *MockRuleRepository) Put(rule *domain.AccountingRule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[rule.ID] = rule
}

func (m *MockRuleRepository) Create(ctx context.Context, rule *domain.AccountingRule) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rule)
	}
	m.Put(rule)
	return nil
}

func (m *MockRuleRepository) GetByID(ctx context.Context, id string) (*domain.AccountingRule, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rule, ok := m.rules[id]; ok {
		return rule, nil
	}
	return nil, domain.ErrRuleNotFound
}

func (m *MockRuleRepository) ListActive(ctx context.Context) ([]*domain.AccountingRule, error) {
	m.mu.Lock()
	m.ListActiveCalls++
	m.mu.Unlock()
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rules := make([]*domain.AccountingRule, 0, len(m.rules))
	for _, rule := range m.rules {
		if !rule.Deleted {
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

func (m *MockRuleRepository) SoftDelete(ctx context.Context, id string, deletedAt time.Time) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id, deletedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if rule, ok := m.rules[id]; ok {
		rule.Deleted = true
		rule.UpdatedAt = deletedAt
		return nil
	}
	return domain.ErrRuleNotFound
}

// MockJournalRepository is a mock implementation of usecase.JournalRepository.
type MockJournalRepository struct {
	mu      sync.RWMutex
	entries []*domain.JournalEntry

	CreateBatchFunc func(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error
	ListByLoanFunc  func(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error)
}

func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{}
}

func (m *MockJournalRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockJournalRepository) ListByLoan(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.JournalEntry
	for _, e := range m.entries {
		if e.LoanID == loanID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockJournalRepository) Entries() []*domain.JournalEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.JournalEntry(nil), m.entries...)
}

// MockRuleProvider is a mock implementation of usecase.RuleProvider.
type MockRuleProvider struct {
	Rules []*domain.AccountingRule
	Err   error
}

func (m *MockRuleProvider) ActiveRules(ctx context.Context) ([]*domain.AccountingRule, error) {
	return m.Rules, m.Err
}

// MockRuleSnapshotCache is a mock implementation of usecase.RuleSnapshotCache.
type MockRuleSnapshotCache struct {
	mu    sync.Mutex
	rules []*domain.AccountingRule
	warm  bool

	GetFunc func(ctx context.Context) ([]*domain.AccountingRule, bool, error)
	SetFunc func(ctx context.Context, rules []*domain.AccountingRule, ttl time.Duration) error

	Invalidations int
}

func NewMockRuleSnapshotCache() *MockRuleSnapshotCache {
	return &MockRuleSnapshotCache{}
}

func (m *MockRuleSnapshotCache) Get(ctx context.Context) ([]*domain.AccountingRule, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rules, m.warm, nil
}

func (m *MockRuleSnapshotCache) Set(ctx context.Context, rules []*domain.AccountingRule, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, rules, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = rules
	m.warm = true
	return nil
}

func (m *MockRuleSnapshotCache) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = nil
	m.warm = false
	m.Invalidations++
	return nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}
