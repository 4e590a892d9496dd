package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// JournalRepository implements usecase.JournalRepository. Journal entries
// are append-only, so the repository exposes no update path.
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

const journalColumns = `id, loan_id, rule_id, event_type, event_attribute, direction,
	debit_account_id, credit_account_id, amount, created_at`

// CreateBatch inserts all entries produced by one posting inside the given
// transaction. A repayment posts every entry or none.
func (r *JournalRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO journal_entries (`+journalColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			e.ID, e.LoanID, e.RuleID, string(e.EventType), string(e.EventAttribute),
			string(e.Direction), e.DebitAccountID, e.CreditAccountID,
			decimalToNumeric(e.Amount), timeToPgTimestamptz(e.CreatedAt),
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

// ListByLoan returns a page of a loan's entries in posting order.
func (r *JournalRepository) ListByLoan(ctx context.Context, loanID string, limit, offset int) ([]*domain.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+journalColumns+` FROM journal_entries
		WHERE loan_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3`, loanID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		var (
			e                                  domain.JournalEntry
			eventType, eventAttribute, direction string
			amount                             pgtype.Numeric
			createdAt                          pgtype.Timestamptz
		)

		err := rows.Scan(
			&e.ID, &e.LoanID, &e.RuleID, &eventType, &eventAttribute, &direction,
			&e.DebitAccountID, &e.CreditAccountID, &amount, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		e.EventType = domain.EventType(eventType)
		e.EventAttribute = domain.EventAttribute(eventAttribute)
		e.Direction = domain.BookingDirection(direction)
		e.CreatedAt = createdAt.Time
		e.Amount = numericToDecimal(amount)

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
