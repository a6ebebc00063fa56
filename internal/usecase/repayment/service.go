package repayment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/validation"
	"go.uber.org/zap"
)

// MarkInstallmentPaidInput identifies one installment of a disbursed loan
type MarkInstallmentPaidInput struct {
	ApplicationID     uuid.UUID `validate:"required"`
	InstallmentNumber int       `validate:"gt=0"`
	// PaidAt defaults to now
	PaidAt time.Time
}

// RepaymentService tracks installment status on repayment schedules.
// Installment status never moves the account balance.
type RepaymentService struct {
	ApplicationRepo  domain.LoanApplicationRepository
	DisbursementRepo domain.DisbursementRepository
	TxManager        domain.TransactionManager
	Logger           *zap.Logger

	Now func() time.Time
}

// NewRepaymentService creates a new RepaymentService instance
func NewRepaymentService(
	applicationRepo domain.LoanApplicationRepository,
	disbursementRepo domain.DisbursementRepository,
	txManager domain.TransactionManager,
	logger *zap.Logger,
) *RepaymentService {
	return &RepaymentService{
		ApplicationRepo:  applicationRepo,
		DisbursementRepo: disbursementRepo,
		TxManager:        txManager,
		Logger:           logger,
		Now:              time.Now,
	}
}

// MarkInstallmentPaid settles one installment of a running loan
func (s *RepaymentService) MarkInstallmentPaid(ctx context.Context, input MarkInstallmentPaidInput) (*domain.LoanDisbursement, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = s.Now()
	}

	var disbursement *domain.LoanDisbursement
	err := s.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		app, err := s.ApplicationRepo.GetByID(ctx, input.ApplicationID)
		if err != nil {
			return domain.ResolveNotFound(err, domain.ErrUnknownApplication, input.ApplicationID)
		}
		if !app.IsActive() {
			return fmt.Errorf("%w: cannot collect on a %s loan", domain.ErrInvalidTransition, app.Status)
		}

		disbursement, err = s.DisbursementRepo.GetByApplicationID(ctx, app.ID)
		if err != nil {
			return domain.ResolveNotFound(err, domain.ErrUnknownDisbursement, app.ID)
		}
		if err := disbursement.MarkInstallmentPaid(input.InstallmentNumber, paidAt); err != nil {
			return err
		}
		if err := s.DisbursementRepo.Update(ctx, disbursement); err != nil {
			return fmt.Errorf("failed to update repayment schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("installment paid",
		zap.String("disbursement_number", disbursement.DisbursementNumber),
		zap.Int("installment", input.InstallmentNumber),
	)
	return disbursement, nil
}

// MarkOverdueInstallments flags pending installments due before asOf on every running loan.
// Returns the number of installments that became overdue.
func (s *RepaymentService) MarkOverdueInstallments(ctx context.Context, asOf time.Time) (int, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}

	disbursements, err := s.DisbursementRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list disbursements: %w", err)
	}

	total := 0
	for _, d := range disbursements {
		app, err := s.ApplicationRepo.GetByID(ctx, d.LoanApplicationID)
		if err != nil {
			return total, domain.ResolveNotFound(err, domain.ErrUnknownApplication, d.LoanApplicationID)
		}
		if !app.IsActive() {
			continue
		}

		changed := d.MarkOverdue(asOf)
		if changed == 0 {
			continue
		}
		if err := s.DisbursementRepo.Update(ctx, d); err != nil {
			return total, fmt.Errorf("failed to update schedule of %s: %w", d.DisbursementNumber, err)
		}
		total += changed
	}

	s.Logger.Info("overdue sweep finished",
		zap.Time("as_of", asOf),
		zap.Int("installments_marked", total),
	)
	return total, nil
}
