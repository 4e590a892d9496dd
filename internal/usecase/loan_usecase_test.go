package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmfi/loancore/internal/domain"
	"github.com/openmfi/loancore/internal/usecase"
	"github.com/openmfi/loancore/internal/usecase/mocks"
)

func TestLoanUseCase_CreateLoan(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	loanRepo := mocks.NewMockLoanRepository()
	instRepo := mocks.NewMockInstallmentRepository()
	uc := usecase.NewLoanUseCase(txManager, loanRepo, instRepo, mocks.NewMockIDGenerator())

	result, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		ClientID:       "client-1",
		ClientType:     domain.ClientTypePerson,
		ProductType:    domain.ProductTypeLoan,
		Currency:       "USD",
		ScheduleMethod: domain.ScheduleFlat,
		Principal:      amount(t, "1200.00"),
		AnnualRate:     decimal.RequireFromString("0.12"),
		Periods:        12,
		FirstDueDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Loan.Status != domain.LoanStatusActive {
		t.Errorf("expected active loan, got %s", result.Loan.Status)
	}

	if len(result.Installments) != 12 {
		t.Fatalf("expected 12 installments, got %d", len(result.Installments))
	}

	for _, inst := range result.Installments {
		if inst.ID == "" {
			t.Error("installments must be assigned IDs")
		}
	}

	if !txManager.LastTx.Committed {
		t.Error("transaction must be committed")
	}

	stored, err := loanRepo.GetByID(context.Background(), result.Loan.ID)
	if err != nil {
		t.Fatalf("loan not persisted: %v", err)
	}

	if stored.ClientID != "client-1" {
		t.Errorf("expected client-1, got %s", stored.ClientID)
	}
}

func TestLoanUseCase_CreateLoanInvalidSchedule(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	uc := usecase.NewLoanUseCase(txManager, mocks.NewMockLoanRepository(), mocks.NewMockInstallmentRepository(), mocks.NewMockIDGenerator())

	_, err := uc.CreateLoan(context.Background(), usecase.CreateLoanInput{
		ClientID:       "client-1",
		Currency:       "USD",
		ScheduleMethod: domain.ScheduleFlat,
		Principal:      domain.ZeroAmount(),
		Periods:        12,
	})
	if !errors.Is(err, domain.ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}

	if txManager.LastTx != nil {
		t.Error("no transaction must be opened for an invalid schedule")
	}
}

func TestLoanUseCase_GetLoan(t *testing.T) {
	loanRepo := mocks.NewMockLoanRepository()
	instRepo := mocks.NewMockInstallmentRepository()
	uc := usecase.NewLoanUseCase(mocks.NewMockTransactionManager(), loanRepo, instRepo, mocks.NewMockIDGenerator())

	loanRepo.Put(activeLoan())
	instRepo.Put("loan-1", scheduledInstallment(t, "inst-1", 1, "0", "10.00", "100.00"))

	result, err := uc.GetLoan(context.Background(), "loan-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Installments) != 1 {
		t.Errorf("expected 1 installment, got %d", len(result.Installments))
	}
}

func TestLoanUseCase_GetLoanNotFound(t *testing.T) {
	uc := usecase.NewLoanUseCase(mocks.NewMockTransactionManager(), mocks.NewMockLoanRepository(), mocks.NewMockInstallmentRepository(), mocks.NewMockIDGenerator())

	_, err := uc.GetLoan(context.Background(), "missing")
	if !errors.Is(err, domain.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
}

func TestLoanUseCase_PreviewSchedule(t *testing.T) {
	uc := usecase.NewLoanUseCase(mocks.NewMockTransactionManager(), mocks.NewMockLoanRepository(), mocks.NewMockInstallmentRepository(), mocks.NewMockIDGenerator())

	insts, err := uc.PreviewSchedule(context.Background(), usecase.PreviewScheduleInput{
		Currency:       "USD",
		ScheduleMethod: domain.ScheduleAnnuity,
		Principal:      amount(t, "1000.00"),
		AnnualRate:     decimal.RequireFromString("0.24"),
		Periods:        6,
		FirstDueDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(insts) != 6 {
		t.Fatalf("expected 6 installments, got %d", len(insts))
	}

	for _, inst := range insts {
		if inst.ID != "" {
			t.Error("preview must not assign IDs")
		}
	}
}
