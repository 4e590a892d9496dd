package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// InstallmentRepository implements usecase.InstallmentRepository.
type InstallmentRepository struct {
	pool *pgxpool.Pool
}

// NewInstallmentRepository creates a new InstallmentRepository.
func NewInstallmentRepository(pool *pgxpool.Pool) *InstallmentRepository {
	return &InstallmentRepository{pool: pool}
}

const installmentColumns = `id, loan_id, number, due_date,
	fees_unpaid, paid_fees, interest_unpaid, paid_interest,
	principal_unpaid, paid_principal, penalty_unpaid, paid_penalty,
	created_at, updated_at`

// CreateBatch inserts a loan's schedule in one batch.
func (r *InstallmentRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, installments []*domain.Installment) error {
	pgxTx := tx.(*Tx).PgxTx()

	batch := &pgx.Batch{}
	for _, inst := range installments {
		batch.Queue(`
			INSERT INTO installments (`+installmentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			inst.ID, inst.LoanID, inst.Number, timeToPgTimestamptz(inst.DueDate),
			amountToNumeric(inst.FeesUnpaid), amountToNumeric(inst.PaidFees),
			amountToNumeric(inst.InterestUnpaid), amountToNumeric(inst.PaidInterest),
			amountToNumeric(inst.PrincipalUnpaid), amountToNumeric(inst.PaidPrincipal),
			amountToNumeric(inst.PenaltyUnpaid), amountToNumeric(inst.PaidPenalty),
			timeToPgTimestamptz(inst.CreatedAt), timeToPgTimestamptz(inst.UpdatedAt),
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range installments {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return nil
}

// ListByLoan lists a loan's installments ordered by number.
func (r *InstallmentRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Installment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+installmentColumns+` FROM installments
		WHERE loan_id = $1
		ORDER BY number`, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInstallments(rows)
}

// ListByLoanForUpdate lists a loan's installments with FOR UPDATE locks,
// ordered by number so allocation always walks the schedule front to back.
func (r *InstallmentRepository) ListByLoanForUpdate(ctx context.Context, tx usecase.Transaction, loanID string) ([]*domain.Installment, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, `
		SELECT `+installmentColumns+` FROM installments
		WHERE loan_id = $1
		ORDER BY number
		FOR UPDATE`, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInstallments(rows)
}

// UpdateBuckets persists the paid/unpaid running totals of one installment.
func (r *InstallmentRepository) UpdateBuckets(ctx context.Context, tx usecase.Transaction, inst *domain.Installment, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE installments SET
			fees_unpaid = $1, paid_fees = $2,
			interest_unpaid = $3, paid_interest = $4,
			principal_unpaid = $5, paid_principal = $6,
			penalty_unpaid = $7, paid_penalty = $8,
			updated_at = $9
		WHERE id = $10`,
		amountToNumeric(inst.FeesUnpaid), amountToNumeric(inst.PaidFees),
		amountToNumeric(inst.InterestUnpaid), amountToNumeric(inst.PaidInterest),
		amountToNumeric(inst.PrincipalUnpaid), amountToNumeric(inst.PaidPrincipal),
		amountToNumeric(inst.PenaltyUnpaid), amountToNumeric(inst.PaidPenalty),
		timeToPgTimestamptz(updatedAt), inst.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrInstallmentNotFound
	}

	return nil
}

func scanInstallments(rows pgx.Rows) ([]*domain.Installment, error) {
	var installments []*domain.Installment

	for rows.Next() {
		var (
			inst                                                   domain.Installment
			feesUnpaid, paidFees, interestUnpaid, paidInterest     pgtype.Numeric
			principalUnpaid, paidPrincipal, penaltyUnpaid, paidPen pgtype.Numeric
			dueDate, createdAt, updatedAt                          pgtype.Timestamptz
		)

		err := rows.Scan(
			&inst.ID, &inst.LoanID, &inst.Number, &dueDate,
			&feesUnpaid, &paidFees, &interestUnpaid, &paidInterest,
			&principalUnpaid, &paidPrincipal, &penaltyUnpaid, &paidPen,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		inst.DueDate = dueDate.Time
		inst.CreatedAt = createdAt.Time
		inst.UpdatedAt = updatedAt.Time
		inst.FeesUnpaid = numericToAmount(feesUnpaid)
		inst.PaidFees = numericToAmount(paidFees)
		inst.InterestUnpaid = numericToAmount(interestUnpaid)
		inst.PaidInterest = numericToAmount(paidInterest)
		inst.PrincipalUnpaid = numericToAmount(principalUnpaid)
		inst.PaidPrincipal = numericToAmount(paidPrincipal)
		inst.PenaltyUnpaid = numericToAmount(penaltyUnpaid)
		inst.PaidPenalty = numericToAmount(paidPen)

		installments = append(installments, &inst)
	}

	return installments, rows.Err()
}
