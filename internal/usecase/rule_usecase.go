package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/infrastructure/metrics"
)

// RuleUseCase administers the accounting rule table and serves resolution
// requests against a cached snapshot of it.
type RuleUseCase struct {
	ruleRepo RuleRepository
	cache    RuleSnapshotCache
	idGen    IDGenerator
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

// NewRuleUseCase creates a new RuleUseCase. cache may be nil to read the
// rule table from storage on every resolution.
func NewRuleUseCase(ruleRepo RuleRepository, cache RuleSnapshotCache, idGen IDGenerator, cacheTTL time.Duration) *RuleUseCase {
	return &RuleUseCase{
		ruleRepo: ruleRepo,
		cache:    cache,
		idGen:    idGen,
		cacheTTL: cacheTTL,
	}
}

// WithMetrics attaches a metrics registry.
func (uc *RuleUseCase) WithMetrics(m *metrics.Metrics) *RuleUseCase {
	uc.metrics = m
	return uc
}

// CreateRuleInput represents input for creating an accounting rule.
type CreateRuleInput struct {
	DebitAccountID   string
	CreditAccountID  string
	Description      string
	Direction        domain.BookingDirection
	EventType        domain.EventType
	EventAttribute   domain.EventAttribute
	ProductType      domain.ProductType
	Currency         string
	ClientType       domain.ClientType
	EconomicActivity string
	PaymentMethod    domain.PaymentMethod
	Order            int
}

// CreateRule validates and persists a new rule and invalidates the cached
// snapshot.
func (uc *RuleUseCase) CreateRule(ctx context.Context, input CreateRuleInput) (*domain.AccountingRule, error) {
	now := time.Now().UTC()

	rule := &domain.AccountingRule{
		ID:               uc.idGen.Generate(),
		DebitAccountID:   input.DebitAccountID,
		CreditAccountID:  input.CreditAccountID,
		Description:      input.Description,
		Direction:        input.Direction,
		EventType:        input.EventType,
		EventAttribute:   input.EventAttribute,
		ProductType:      input.ProductType,
		Currency:         input.Currency,
		ClientType:       input.ClientType,
		EconomicActivity: input.EconomicActivity,
		PaymentMethod:    input.PaymentMethod,
		Order:            input.Order,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if rule.Order == other.Order && rule.SameDimensions(other) {
			return nil, fmt.Errorf("%w: rule %s has identical dimensions and order", domain.ErrAmbiguousRuleMatch, other.ID)
		}
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)

	if uc.metrics != nil {
		uc.metrics.RulesCreated.Inc()
	}

	return rule, nil
}

// DeleteRule soft-deletes a rule and invalidates the cached snapshot.
func (uc *RuleUseCase) DeleteRule(ctx context.Context, id string) error {
	if err := uc.ruleRepo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		return err
	}

	uc.invalidate(ctx)

	if uc.metrics != nil {
		uc.metrics.RulesDeleted.Inc()
	}

	return nil
}

// GetRule retrieves one rule by ID.
func (uc *RuleUseCase) GetRule(ctx context.Context, id string) (*domain.AccountingRule, error) {
	return uc.ruleRepo.GetByID(ctx, id)
}

// ListRules lists the active rules ordered by Order.
func (uc *RuleUseCase) ListRules(ctx context.Context) ([]*domain.AccountingRule, error) {
	return uc.ruleRepo.ListActive(ctx)
}

// ActiveRules returns a consistent snapshot of the active rule table,
// serving from cache when one is configured and warm.
func (uc *RuleUseCase) ActiveRules(ctx context.Context) ([]*domain.AccountingRule, error) {
	if uc.cache != nil {
		rules, ok, err := uc.cache.Get(ctx)
		if err == nil && ok {
			if uc.metrics != nil {
				uc.metrics.RuleCacheHits.Inc()
			}
			return rules, nil
		}
		if uc.metrics != nil {
			uc.metrics.RuleCacheMisses.Inc()
		}
	}

	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		// Cache population is best effort; resolution proceeds either way.
		_ = uc.cache.Set(ctx, rules, uc.cacheTTL)
	}

	return rules, nil
}

// Resolve runs a dry-run resolution of an event context against the active
// rule table. Used by administrators to debug rule configuration.
func (uc *RuleUseCase) Resolve(ctx context.Context, event domain.FinancialEvent) (*domain.AccountingRule, error) {
	rules, err := uc.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	rule, err := domain.ResolveRule(event, rules)
	uc.countResolution(err)
	if err != nil {
		return nil, err
	}

	// Callers get a copy so the cached snapshot stays immutable.
	return rule.Copy(), nil
}

func (uc *RuleUseCase) countResolution(err error) {
	if uc.metrics == nil {
		return
	}

	outcome := "resolved"
	switch {
	case errors.Is(err, domain.ErrNoMatchingRule):
		outcome = "no_match"
	case errors.Is(err, domain.ErrAmbiguousRuleMatch):
		outcome = "ambiguous"
	case err != nil:
		outcome = "error"
	}

	uc.metrics.RuleResolutions.WithLabelValues(outcome).Inc()
}

func (uc *RuleUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
}

var _ RuleProvider = (*RuleUseCase)(nil)
