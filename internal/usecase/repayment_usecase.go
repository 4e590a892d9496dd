package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/infrastructure/metrics"
)

// RepaymentUseCase posts repayments: it allocates the paid amount across the
// loan's installments and resolves each resulting financial event to a
// ledger posting.
type RepaymentUseCase struct {
	txManager       TransactionManager
	loanRepo        LoanRepository
	installmentRepo InstallmentRepository
	journalRepo     JournalRepository
	rules           RuleProvider
	idGen           IDGenerator
	policy          domain.AllocationPolicy
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewRepaymentUseCase creates a new RepaymentUseCase using the automatic
// fees-first allocation order.
func NewRepaymentUseCase(
	txManager TransactionManager,
	loanRepo LoanRepository,
	installmentRepo InstallmentRepository,
	journalRepo JournalRepository,
	rules RuleProvider,
	idGen IDGenerator,
) *RepaymentUseCase {
	return &RepaymentUseCase{
		txManager:       txManager,
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		journalRepo:     journalRepo,
		rules:           rules,
		idGen:           idGen,
		policy:          domain.NewFeesFirstWaterfall(),
	}
}

// WithPolicy overrides the allocation policy, for products that repay in a
// different bucket order.
func (uc *RepaymentUseCase) WithPolicy(policy domain.AllocationPolicy) *RepaymentUseCase {
	uc.policy = policy
	return uc
}

// WithRetrier makes the posting transaction retry on transient storage
// errors such as deadlocks and serialization failures.
func (uc *RepaymentUseCase) WithRetrier(retrier Retrier) *RepaymentUseCase {
	uc.retrier = retrier
	return uc
}

// WithMetrics attaches a metrics registry.
func (uc *RepaymentUseCase) WithMetrics(m *metrics.Metrics) *RepaymentUseCase {
	uc.metrics = m
	return uc
}

// RepayInput represents input for posting one repayment.
type RepayInput struct {
	EventAt       *time.Time
	LoanID        string
	PaymentMethod domain.PaymentMethod
	Amount        domain.Amount
}

// InstallmentAllocation reports how one installment absorbed part of the
// payment.
type InstallmentAllocation struct {
	InstallmentID string
	Number        int
	Result        domain.AllocationResult
}

// RepaymentResult is the outcome of posting one repayment.
type RepaymentResult struct {
	Entries     []*domain.JournalEntry
	Allocations []InstallmentAllocation
	Unallocated domain.Amount
	LoanSettled bool
}

// repaymentBucketOrder fixes the order event totals are posted in, so the
// same payment always produces the same entry sequence.
var repaymentBucketOrder = []domain.BucketKind{
	domain.BucketFees,
	domain.BucketInterest,
	domain.BucketPrincipal,
	domain.BucketPenalty,
}

// Repay posts one repayment against a loan.
//
// The rule snapshot is taken before the storage transaction begins and used
// unchanged for every event of this posting. Any allocation or resolution
// error rolls the whole posting back: there are no partial commits.
func (uc *RepaymentUseCase) Repay(ctx context.Context, input RepayInput) (*RepaymentResult, error) {
	if err := domain.ValidatePayment(input.Amount); err != nil {
		uc.countError(err)
		return nil, err
	}

	rules, err := uc.rules.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	eventAt := now
	if input.EventAt != nil {
		eventAt = *input.EventAt
	}

	var result *RepaymentResult
	if uc.retrier == nil {
		result, err = uc.post(ctx, input, rules, eventAt, now)
	} else {
		err = uc.retrier.Retry(ctx, func() error {
			var postErr error
			result, postErr = uc.post(ctx, input, rules, eventAt, now)
			return postErr
		})
	}
	if err != nil {
		uc.countError(err)
		return nil, err
	}

	uc.observe(result, input.Amount, now)

	return result, nil
}

func (uc *RepaymentUseCase) observe(result *RepaymentResult, amount domain.Amount, started time.Time) {
	if uc.metrics == nil {
		return
	}

	m := uc.metrics
	m.RepaymentsPosted.Inc()
	m.RepaymentDuration.Observe(time.Since(started).Seconds())
	m.RepaymentAmount.Observe(amount.Decimal().InexactFloat64())
	m.EntriesPosted.Add(float64(len(result.Entries)))

	for _, a := range result.Allocations {
		for _, b := range a.Result.Buckets {
			m.AllocationsByBucket.WithLabelValues(string(b.Kind)).Inc()
		}
	}

	if !result.Unallocated.IsZero() {
		m.OverpaymentResiduals.Inc()
	}

	if result.LoanSettled {
		m.LoansSettled.Inc()
	}
}

func (uc *RepaymentUseCase) countError(err error) {
	if uc.metrics == nil {
		return
	}

	label := "internal"
	switch {
	case errors.Is(err, domain.ErrInvalidPaymentAmount):
		label = "invalid_amount"
	case errors.Is(err, domain.ErrNoMatchingRule):
		label = "no_matching_rule"
	case errors.Is(err, domain.ErrAmbiguousRuleMatch):
		label = "ambiguous_rule"
	case errors.Is(err, domain.ErrLoanNotActive):
		label = "loan_not_active"
	case errors.Is(err, domain.ErrLoanNotFound):
		label = "loan_not_found"
	}

	uc.metrics.RepaymentErrors.WithLabelValues(label).Inc()
}

// post runs one posting attempt inside its own storage transaction.
func (uc *RepaymentUseCase) post(ctx context.Context, input RepayInput, rules []*domain.AccountingRule, eventAt, now time.Time) (*RepaymentResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	loan, err := uc.loanRepo.GetByIDForUpdate(ctx, tx, input.LoanID)
	if err != nil {
		return nil, err
	}

	if loan.Status != domain.LoanStatusActive {
		return nil, domain.ErrLoanNotActive
	}

	installments, err := uc.installmentRepo.ListByLoanForUpdate(ctx, tx, input.LoanID)
	if err != nil {
		return nil, err
	}

	result := &RepaymentResult{Unallocated: input.Amount}
	totals := map[domain.BucketKind]domain.Amount{}

	var touched []*domain.Installment

	for _, inst := range installments {
		if result.Unallocated.IsZero() {
			break
		}

		if inst.IsSettled() {
			continue
		}

		alloc, err := uc.policy.Allocate(result.Unallocated, inst)
		if err != nil {
			return nil, err
		}

		for _, b := range alloc.Buckets {
			if total, ok := totals[b.Kind]; ok {
				totals[b.Kind] = total.Add(b.Consumed)
			} else {
				totals[b.Kind] = b.Consumed
			}
		}

		result.Allocations = append(result.Allocations, InstallmentAllocation{
			InstallmentID: inst.ID,
			Number:        inst.Number,
			Result:        alloc,
		})
		result.Unallocated = alloc.Residual

		touched = append(touched, inst)
	}

	for _, kind := range repaymentBucketOrder {
		total, ok := totals[kind]
		if !ok || total.IsZero() {
			continue
		}

		event := loan.Event(domain.EventTypeRepayment, kind.Attribute(), input.PaymentMethod, total, eventAt)

		rule, err := domain.ResolveRule(event, rules)
		if err != nil {
			return nil, err
		}

		result.Entries = append(result.Entries, &domain.JournalEntry{
			ID:              uc.idGen.Generate(),
			LoanID:          loan.ID,
			RuleID:          rule.ID,
			EventType:       event.Type,
			EventAttribute:  event.Attribute,
			Direction:       rule.Direction,
			DebitAccountID:  rule.DebitAccountID,
			CreditAccountID: rule.CreditAccountID,
			Amount:          total.Decimal(),
			CreatedAt:       now,
		})
	}

	for _, inst := range touched {
		if err := uc.installmentRepo.UpdateBuckets(ctx, tx, inst, now); err != nil {
			return nil, err
		}
	}

	if len(result.Entries) > 0 {
		if err := uc.journalRepo.CreateBatch(ctx, tx, result.Entries); err != nil {
			return nil, err
		}
	}

	result.LoanSettled = allSettled(installments)
	if result.LoanSettled {
		if err := uc.loanRepo.UpdateStatus(ctx, tx, loan.ID, domain.LoanStatusRepaid, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// ListEntries lists the journal entries posted against a loan.
func (uc *RepaymentUseCase) ListEntries(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.journalRepo.ListByLoan(ctx, loanID, limit, offset)
}

func allSettled(installments []*domain.Installment) bool {
	for _, inst := range installments {
		if !inst.IsSettled() {
			return false
		}
	}

	return len(installments) > 0
}
