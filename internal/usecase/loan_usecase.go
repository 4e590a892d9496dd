package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/infrastructure/metrics"
)

// LoanUseCase handles loan creation and schedule building.
type LoanUseCase struct {
	txManager       TransactionManager
	loanRepo        LoanRepository
	installmentRepo InstallmentRepository
	idGen           IDGenerator
	metrics         *metrics.Metrics
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(
	txManager TransactionManager,
	loanRepo LoanRepository,
	installmentRepo InstallmentRepository,
	idGen IDGenerator,
) *LoanUseCase {
	return &LoanUseCase{
		txManager:       txManager,
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		idGen:           idGen,
	}
}

// WithMetrics attaches a metrics registry.
func (uc *LoanUseCase) WithMetrics(m *metrics.Metrics) *LoanUseCase {
	uc.metrics = m
	return uc
}

// CreateLoanInput represents input for creating a loan with its schedule.
type CreateLoanInput struct {
	FirstDueDate     time.Time
	DisbursedAt      *time.Time
	ClientID         string
	ClientType       domain.ClientType
	ProductType      domain.ProductType
	Currency         string
	EconomicActivity string
	ScheduleMethod   domain.ScheduleMethod
	Principal        domain.Amount
	AnnualRate       decimal.Decimal
	Periods          int
	InstallmentFee   domain.Amount
}

// LoanWithSchedule bundles a loan and its installments.
type LoanWithSchedule struct {
	Loan         *domain.Loan
	Installments []*domain.Installment
}

// CreateLoan creates a loan and builds its amortization schedule atomically.
func (uc *LoanUseCase) CreateLoan(ctx context.Context, input CreateLoanInput) (*LoanWithSchedule, error) {
	now := time.Now().UTC()

	disbursedAt := now
	if input.DisbursedAt != nil {
		disbursedAt = *input.DisbursedAt
	}

	loan := &domain.Loan{
		ID:               uc.idGen.Generate(),
		ClientID:         input.ClientID,
		ClientType:       input.ClientType,
		ProductType:      input.ProductType,
		Currency:         input.Currency,
		EconomicActivity: input.EconomicActivity,
		Status:           domain.LoanStatusActive,
		Principal:        input.Principal,
		AnnualRate:       input.AnnualRate,
		Periods:          input.Periods,
		DisbursedAt:      disbursedAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	installments, err := domain.BuildSchedule(loan, domain.ScheduleParams{
		Method:         input.ScheduleMethod,
		FirstDueDate:   input.FirstDueDate,
		InstallmentFee: input.InstallmentFee,
	})
	if err != nil {
		return nil, err
	}

	for _, inst := range installments {
		inst.ID = uc.idGen.Generate()
		inst.CreatedAt = now
		inst.UpdatedAt = now
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.loanRepo.Create(ctx, tx, loan); err != nil {
		return nil, err
	}

	if err := uc.installmentRepo.CreateBatch(ctx, tx, installments); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.LoansCreated.Inc()
		uc.metrics.SchedulesBuilt.WithLabelValues(string(input.ScheduleMethod)).Inc()
	}

	return &LoanWithSchedule{Loan: loan, Installments: installments}, nil
}

// GetLoan retrieves a loan with its installments.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*LoanWithSchedule, error) {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	installments, err := uc.installmentRepo.ListByLoan(ctx, id)
	if err != nil {
		return nil, err
	}

	return &LoanWithSchedule{Loan: loan, Installments: installments}, nil
}

// ListLoans lists loans.
func (uc *LoanUseCase) ListLoans(ctx context.Context, limit, offset int) ([]*domain.Loan, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.loanRepo.List(ctx, limit, offset)
}

// PreviewScheduleInput represents input for a schedule dry run.
type PreviewScheduleInput struct {
	FirstDueDate   time.Time
	Currency       string
	ScheduleMethod domain.ScheduleMethod
	Principal      domain.Amount
	AnnualRate     decimal.Decimal
	Periods        int
	InstallmentFee domain.Amount
}

// PreviewSchedule builds a schedule without persisting anything.
func (uc *LoanUseCase) PreviewSchedule(ctx context.Context, input PreviewScheduleInput) ([]*domain.Installment, error) {
	loan := &domain.Loan{
		Currency:   input.Currency,
		Principal:  input.Principal,
		AnnualRate: input.AnnualRate,
		Periods:    input.Periods,
	}

	installments, err := domain.BuildSchedule(loan, domain.ScheduleParams{
		Method:         input.ScheduleMethod,
		FirstDueDate:   input.FirstDueDate,
		InstallmentFee: input.InstallmentFee,
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SchedulesBuilt.WithLabelValues(string(input.ScheduleMethod)).Inc()
	}

	return installments, nil
}
