package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/validation"
	"go.uber.org/zap"
)

const adjustmentPrefix = "ADJ"

// ApplyAdjustmentInput represents the input for posting an adjustment against a running loan
type ApplyAdjustmentInput struct {
	ApplicationID uuid.UUID             `validate:"required"`
	Type          domain.AdjustmentType `validate:"required"`
	Amount        decimal.Decimal
	Reason        string `validate:"required"`
	ApprovedBy    string `validate:"required"`
}

// AdjustmentResult is the adjustment plus the state it left behind
type AdjustmentResult struct {
	Adjustment *domain.LoanAdjustment
	Balance    decimal.Decimal
	Status     domain.LoanStatus
}

// AdjustmentService handles post-disbursement corrections
type AdjustmentService struct {
	AccountRepo     domain.AccountRepository
	ApplicationRepo domain.LoanApplicationRepository
	AdjustmentRepo  domain.AdjustmentRepository
	TxManager       domain.TransactionManager
	Logger          *zap.Logger

	Now func() time.Time
}

// NewAdjustmentService creates a new AdjustmentService instance
func NewAdjustmentService(
	accountRepo domain.AccountRepository,
	applicationRepo domain.LoanApplicationRepository,
	adjustmentRepo domain.AdjustmentRepository,
	txManager domain.TransactionManager,
	logger *zap.Logger,
) *AdjustmentService {
	return &AdjustmentService{
		AccountRepo:     accountRepo,
		ApplicationRepo: applicationRepo,
		AdjustmentRepo:  adjustmentRepo,
		TxManager:       txManager,
		Logger:          logger,
		Now:             time.Now,
	}
}

// ApplyAdjustment posts an adjustment against an active loan
// Logic (one transaction):
//  1. The application must be active (or a legacy disbursed record)
//  2. Apply the balance delta of the adjustment type to the linked account
//  3. If the type closes the loan, force the application to closed
//  4. Record the adjustment
//
// Either every write lands or none does.
func (s *AdjustmentService) ApplyAdjustment(ctx context.Context, input ApplyAdjustmentInput) (*AdjustmentResult, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: adjustment amount must be positive", domain.ErrInvalidInput)
	}
	effect, err := input.Type.Effect()
	if err != nil {
		return nil, err
	}

	var result *AdjustmentResult
	err = s.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		app, err := s.ApplicationRepo.GetByID(ctx, input.ApplicationID)
		if err != nil {
			return domain.ResolveNotFound(err, domain.ErrUnknownApplication, input.ApplicationID)
		}
		if app.Status.IsTerminal() {
			return fmt.Errorf("%w: loan is %s and can no longer be adjusted", domain.ErrInvalidTransition, app.Status)
		}
		if !app.IsActive() {
			return fmt.Errorf("%w: cannot adjust a %s loan before disbursement", domain.ErrInvalidTransition, app.Status)
		}

		account, err := s.AccountRepo.GetByID(ctx, app.AccountID)
		if err != nil {
			return domain.ResolveNotFound(err, domain.ErrUnknownAccount, app.AccountID)
		}

		now := s.Now()
		adj := &domain.LoanAdjustment{
			ID:                uuid.New(),
			AdjustmentNumber:  domain.NewReference(adjustmentPrefix, now),
			LoanApplicationID: app.ID,
			AccountID:         account.ID,
			Type:              input.Type,
			Amount:            input.Amount,
			Reason:            input.Reason,
			ApprovedBy:        input.ApprovedBy,
			AdjustedAt:        now,
		}
		if err := adj.Validate(); err != nil {
			return err
		}

		if delta := effect.BalanceDelta(adj.Amount); !delta.IsZero() {
			account.ApplyDelta(delta)
			if err := s.AccountRepo.Update(ctx, account); err != nil {
				return fmt.Errorf("failed to update account balance: %w", err)
			}
		}

		if effect.ClosesLoan {
			if err := app.Close(); err != nil {
				return err
			}
			if err := s.ApplicationRepo.Update(ctx, app); err != nil {
				return fmt.Errorf("failed to close loan application: %w", err)
			}
		}

		if err := s.AdjustmentRepo.Create(ctx, adj); err != nil {
			return fmt.Errorf("failed to record adjustment: %w", err)
		}

		result = &AdjustmentResult{
			Adjustment: adj,
			Balance:    account.Balance,
			Status:     app.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.Type == domain.AdjustmentTypeInterestRecalculation {
		s.Logger.Warn("interest recalculation recorded without a balance effect",
			zap.String("adjustment_number", result.Adjustment.AdjustmentNumber),
			zap.String("application_id", input.ApplicationID.String()),
		)
	}
	s.Logger.Info("loan adjustment applied",
		zap.String("adjustment_number", result.Adjustment.AdjustmentNumber),
		zap.String("type", string(input.Type)),
		zap.String("amount", input.Amount.StringFixed(2)),
		zap.String("status", string(result.Status)),
	)
	return result, nil
}

// ListAdjustments returns the adjustments of one application, or all of them when applicationID is nil
func (s *AdjustmentService) ListAdjustments(ctx context.Context, applicationID *uuid.UUID) ([]*domain.LoanAdjustment, error) {
	adjustments, err := s.AdjustmentRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	return adjustments, nil
}
