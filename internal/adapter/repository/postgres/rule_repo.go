package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openmfi/loancore/internal/domain"
)

// RuleRepository implements usecase.RuleRepository. Wildcard dimensions are
// stored as empty strings, mirroring the domain's zero-value convention.
type RuleRepository struct {
	pool *pgxpool.Pool
}

// NewRuleRepository creates a new RuleRepository.
func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

const ruleColumns = `id, debit_account_id, credit_account_id, description, direction,
	event_type, event_attribute, product_type, currency, client_type,
	economic_activity, payment_method, rule_order, deleted, created_at, updated_at`

// Create persists a new rule.
func (r *RuleRepository) Create(ctx context.Context, rule *domain.AccountingRule) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounting_rules (`+ruleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		rule.ID, rule.DebitAccountID, rule.CreditAccountID, rule.Description,
		string(rule.Direction), string(rule.EventType), string(rule.EventAttribute),
		string(rule.ProductType), rule.Currency, string(rule.ClientType),
		rule.EconomicActivity, string(rule.PaymentMethod), rule.Order, rule.Deleted,
		timeToPgTimestamptz(rule.CreatedAt), timeToPgTimestamptz(rule.UpdatedAt),
	)

	return err
}

// GetByID retrieves a rule by ID, soft-deleted ones included.
func (r *RuleRepository) GetByID(ctx context.Context, id string) (*domain.AccountingRule, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ruleColumns+` FROM accounting_rules WHERE id = $1`, id)

	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRuleNotFound
		}

		return nil, err
	}

	return rule, nil
}

// ListActive lists non-deleted rules ordered by their explicit priority.
func (r *RuleRepository) ListActive(ctx context.Context) ([]*domain.AccountingRule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+ruleColumns+` FROM accounting_rules
		WHERE deleted = FALSE
		ORDER BY rule_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*domain.AccountingRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// SoftDelete marks a rule deleted without removing it.
func (r *RuleRepository) SoftDelete(ctx context.Context, id string, deletedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounting_rules SET deleted = TRUE, updated_at = $1
		WHERE id = $2 AND deleted = FALSE`,
		timeToPgTimestamptz(deletedAt), id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRuleNotFound
	}

	return nil
}

func scanRule(row pgx.Row) (*domain.AccountingRule, error) {
	var (
		rule                                                             domain.AccountingRule
		direction, eventType, eventAttribute, productType, clientType, paymentMethod string
		createdAt, updatedAt                                             pgtype.Timestamptz
	)

	err := row.Scan(
		&rule.ID, &rule.DebitAccountID, &rule.CreditAccountID, &rule.Description,
		&direction, &eventType, &eventAttribute, &productType, &rule.Currency,
		&clientType, &rule.EconomicActivity, &paymentMethod, &rule.Order, &rule.Deleted,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.Direction = domain.BookingDirection(direction)
	rule.EventType = domain.EventType(eventType)
	rule.EventAttribute = domain.EventAttribute(eventAttribute)
	rule.ProductType = domain.ProductType(productType)
	rule.ClientType = domain.ClientType(clientType)
	rule.PaymentMethod = domain.PaymentMethod(paymentMethod)
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
