package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

const loanColumns = `id, client_id, client_type, product_type, currency, economic_activity,
	status, principal, annual_rate, periods, disbursed_at, created_at, updated_at`

// Create creates a new loan inside a transaction.
func (r *LoanRepository) Create(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO loans (`+loanColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		loan.ID, loan.ClientID, string(loan.ClientType), string(loan.ProductType),
		loan.Currency, loan.EconomicActivity, string(loan.Status),
		amountToNumeric(loan.Principal), decimalToNumeric(loan.AnnualRate), loan.Periods,
		timeToPgTimestamptz(loan.DisbursedAt), timeToPgTimestamptz(loan.CreatedAt), timeToPgTimestamptz(loan.UpdatedAt),
	)

	return err
}

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)

	return scanLoan(row)
}

// GetByIDForUpdate retrieves a loan by ID with a FOR UPDATE lock.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Loan, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, id)

	return scanLoan(row)
}

// UpdateStatus updates a loan's lifecycle status.
func (r *LoanRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.LoanStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `UPDATE loans SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), timeToPgTimestamptz(updatedAt), id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrLoanNotFound
	}

	return nil
}

// List lists loans ordered by creation time.
func (r *LoanRepository) List(ctx context.Context, limit, offset int) ([]*domain.Loan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+loanColumns+` FROM loans
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []*domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, rows.Err()
}

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var (
		loan                            domain.Loan
		clientType, productType, status string
		principal, annualRate           pgtype.Numeric
		disbursedAt, createdAt, updated pgtype.Timestamptz
	)

	err := row.Scan(
		&loan.ID, &loan.ClientID, &clientType, &productType, &loan.Currency,
		&loan.EconomicActivity, &status, &principal, &annualRate, &loan.Periods,
		&disbursedAt, &createdAt, &updated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	loan.ClientType = domain.ClientType(clientType)
	loan.ProductType = domain.ProductType(productType)
	loan.Status = domain.LoanStatus(status)
	loan.Principal = numericToAmount(principal)
	loan.AnnualRate = numericToDecimal(annualRate)
	loan.DisbursedAt = disbursedAt.Time
	loan.CreatedAt = createdAt.Time
	loan.UpdatedAt = updated.Time

	return &loan, nil
}
