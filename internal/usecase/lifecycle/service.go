package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/amortization"
	"github.com/simaogato/lendflow-backend/internal/usecase/validation"
	"go.uber.org/zap"
)

const (
	applicationPrefix  = "APP"
	disbursementPrefix = "DIS"

	// DefaultNotifyTimeout bounds the post-commit borrower notification
	DefaultNotifyTimeout = 5 * time.Second
)

// SubmitApplicationInput represents the input for submitting a loan application
type SubmitApplicationInput struct {
	AccountID     uuid.UUID `validate:"required"`
	LoanProductID uuid.UUID `validate:"required"`
	Amount        decimal.Decimal
	AppliedBy     string `validate:"required"`
}

// ReviewInput represents an approval or rejection decision
type ReviewInput struct {
	ApplicationID uuid.UUID `validate:"required"`
	ActorID       string    `validate:"required"`
	Remarks       string
}

// DisburseInput represents the input for releasing funds of an approved application
type DisburseInput struct {
	ApplicationID uuid.UUID `validate:"required"`
	DisbursedBy   string    `validate:"required"`
	// DisbursedTo defaults to the borrower's account number
	DisbursedTo string
	// DisbursedAt defaults to now. The first installment is due one month later.
	DisbursedAt time.Time
}

// LoanService drives a loan application through its lifecycle
type LoanService struct {
	AccountRepo      domain.AccountRepository
	ProductRepo      domain.LoanProductRepository
	ApplicationRepo  domain.LoanApplicationRepository
	DisbursementRepo domain.DisbursementRepository
	TxManager        domain.TransactionManager
	Notifier         domain.DisbursementNotifier
	Logger           *zap.Logger

	NotifyTimeout time.Duration
	Now           func() time.Time

	notices sync.WaitGroup
}

// NewLoanService creates a new LoanService instance
func NewLoanService(
	accountRepo domain.AccountRepository,
	productRepo domain.LoanProductRepository,
	applicationRepo domain.LoanApplicationRepository,
	disbursementRepo domain.DisbursementRepository,
	txManager domain.TransactionManager,
	notifier domain.DisbursementNotifier,
	logger *zap.Logger,
) *LoanService {
	return &LoanService{
		AccountRepo:      accountRepo,
		ProductRepo:      productRepo,
		ApplicationRepo:  applicationRepo,
		DisbursementRepo: disbursementRepo,
		TxManager:        txManager,
		Notifier:         notifier,
		Logger:           logger,
		NotifyTimeout:    DefaultNotifyTimeout,
		Now:              time.Now,
	}
}

// SubmitApplication creates a pending application against a loan product
// Logic:
//  1. The account and the product must exist
//  2. The amount must fall within the product's [MinAmount, MaxAmount]
//  3. Interest rate and tenure are copied from the product
func (s *LoanService) SubmitApplication(ctx context.Context, input SubmitApplicationInput) (*domain.LoanApplication, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidInput)
	}

	if _, err := s.AccountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownAccount, input.AccountID)
	}

	product, err := s.ProductRepo.GetByID(ctx, input.LoanProductID)
	if err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownProduct, input.LoanProductID)
	}
	if !product.AllowsAmount(input.Amount) {
		return nil, fmt.Errorf("%w: amount %s outside product range [%s, %s]",
			domain.ErrInvalidInput, input.Amount, product.MinAmount, product.MaxAmount)
	}

	now := s.Now()
	app := &domain.LoanApplication{
		ID:                uuid.New(),
		ApplicationNumber: domain.NewReference(applicationPrefix, now),
		AccountID:         input.AccountID,
		LoanProductID:     product.ID,
		BankID:            product.BankID,
		Amount:            input.Amount,
		InterestRate:      product.InterestRate,
		TenureMonths:      product.TenureMonths,
		Status:            domain.LoanStatusPending,
		AppliedBy:         input.AppliedBy,
		AppliedAt:         now,
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}

	if err := s.ApplicationRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create loan application: %w", err)
	}
	return app, nil
}

// ApproveApplication moves a pending application to approved
func (s *LoanService) ApproveApplication(ctx context.Context, input ReviewInput) (*domain.LoanApplication, error) {
	return s.review(ctx, input, func(app *domain.LoanApplication, at time.Time) error {
		return app.Approve(input.ActorID, at)
	})
}

// RejectApplication moves a pending application to rejected
func (s *LoanService) RejectApplication(ctx context.Context, input ReviewInput) (*domain.LoanApplication, error) {
	return s.review(ctx, input, func(app *domain.LoanApplication, at time.Time) error {
		return app.Reject(input.ActorID, at, input.Remarks)
	})
}

func (s *LoanService) review(ctx context.Context, input ReviewInput, decide func(*domain.LoanApplication, time.Time) error) (*domain.LoanApplication, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	app, err := s.ApplicationRepo.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownApplication, input.ApplicationID)
	}
	if err := decide(app, s.Now()); err != nil {
		return nil, err
	}
	if err := s.ApplicationRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to update loan application: %w", err)
	}

	s.Logger.Info("loan application reviewed",
		zap.String("application_id", app.ID.String()),
		zap.String("status", string(app.Status)),
		zap.String("reviewed_by", app.ReviewedBy),
	)
	return app, nil
}

// ListDisbursable returns the approved applications that have no disbursement yet
func (s *LoanService) ListDisbursable(ctx context.Context) ([]*domain.LoanApplication, error) {
	approved, err := s.ApplicationRepo.List(ctx, domain.LoanStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved applications: %w", err)
	}

	disbursable := make([]*domain.LoanApplication, 0, len(approved))
	for _, app := range approved {
		_, err := s.DisbursementRepo.GetByApplicationID(ctx, app.ID)
		if err == nil {
			continue
		}
		if !domain.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check disbursement of %s: %w", app.ID, err)
		}
		disbursable = append(disbursable, app)
	}
	return disbursable, nil
}

// DisburseLoan releases the funds of an approved application
// Logic (one transaction):
//  1. Reject the call if the application already has a disbursement
//  2. Generate the repayment schedule starting at the disbursement date
//  3. Create the disbursement, credit the account with the principal and mark the application active
//
// After commit the borrower is notified in the background. A failed notification is
// logged and never undoes the disbursement.
func (s *LoanService) DisburseLoan(ctx context.Context, input DisburseInput) (*domain.LoanDisbursement, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	disbursedAt := input.DisbursedAt
	if disbursedAt.IsZero() {
		disbursedAt = s.Now()
	}

	var (
		disbursement *domain.LoanDisbursement
		account      *domain.Account
	)
	err := s.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		app, err := s.ApplicationRepo.GetByID(ctx, input.ApplicationID)
		if err != nil {
			return domain.ResolveNotFound(err, domain.ErrUnknownApplication, input.ApplicationID)
		}

		if _, err := s.DisbursementRepo.GetByApplicationID(ctx, app.ID); err == nil {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyDisbursed, app.ApplicationNumber)
		} else if !domain.IsNotFound(err) {
			return fmt.Errorf("failed to check existing disbursement: %w", err)
		}

		if err := app.Activate(); err != nil {
			return err
		}

		account, err = s.AccountRepo.GetByID(ctx, app.AccountID)
		if err != nil {
			return domain.ResolveNotFound(err, domain.ErrUnknownAccount, app.AccountID)
		}

		schedule, err := amortization.GenerateRepaymentSchedule(app.Amount, app.InterestRate, app.TenureMonths, disbursedAt)
		if err != nil {
			return err
		}

		disbursedTo := input.DisbursedTo
		if disbursedTo == "" {
			disbursedTo = account.AccountNumber
		}
		disbursement = &domain.LoanDisbursement{
			ID:                 uuid.New(),
			DisbursementNumber: domain.NewReference(disbursementPrefix, disbursedAt),
			LoanApplicationID:  app.ID,
			AccountID:          account.ID,
			Amount:             app.Amount,
			DisbursedTo:        disbursedTo,
			DisbursedBy:        input.DisbursedBy,
			DisbursedAt:        disbursedAt,
			RepaymentSchedule:  schedule,
		}
		if err := s.DisbursementRepo.Create(ctx, disbursement); err != nil {
			return fmt.Errorf("failed to create disbursement: %w", err)
		}

		account.ApplyDelta(app.Amount)
		if err := s.AccountRepo.Update(ctx, account); err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}

		if err := s.ApplicationRepo.Update(ctx, app); err != nil {
			return fmt.Errorf("failed to update loan application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("loan disbursed",
		zap.String("application_id", disbursement.LoanApplicationID.String()),
		zap.String("disbursement_number", disbursement.DisbursementNumber),
		zap.String("amount", disbursement.Amount.StringFixed(2)),
		zap.Int("installments", len(disbursement.RepaymentSchedule)),
	)

	s.notices.Add(1)
	go func() {
		defer s.notices.Done()
		s.notify(ctx, account, disbursement)
	}()
	return disbursement, nil
}

// WaitNotices blocks until every pending disbursement notice has been sent or has failed
func (s *LoanService) WaitNotices() {
	s.notices.Wait()
}

func (s *LoanService) notify(ctx context.Context, account *domain.Account, disbursement *domain.LoanDisbursement) {
	if account.Email == "" {
		s.Logger.Debug("borrower has no email, skipping disbursement notice",
			zap.String("account_id", account.ID.String()))
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.NotifyTimeout)
	defer cancel()

	notice := domain.DisbursementNotice{
		RecipientEmail:     account.Email,
		BorrowerName:       account.BorrowerName,
		DisbursementNumber: disbursement.DisbursementNumber,
		Amount:             disbursement.Amount,
		Schedule:           disbursement.RepaymentSchedule,
	}
	if err := s.Notifier.NotifyDisbursement(notifyCtx, notice); err != nil {
		s.Logger.Warn("failed to send disbursement notice",
			zap.String("disbursement_number", disbursement.DisbursementNumber),
			zap.Error(err),
		)
	}
}

// GetApplication retrieves a loan application by ID
func (s *LoanService) GetApplication(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	app, err := s.ApplicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownApplication, id)
	}
	return app, nil
}

// ListApplications returns applications in the given status, or all of them when status is empty
func (s *LoanService) ListApplications(ctx context.Context, status domain.LoanStatus) ([]*domain.LoanApplication, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	apps, err := s.ApplicationRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan applications: %w", err)
	}
	return apps, nil
}

// GetDisbursementByID retrieves a disbursement by its own ID
func (s *LoanService) GetDisbursementByID(ctx context.Context, id uuid.UUID) (*domain.LoanDisbursement, error) {
	disbursement, err := s.DisbursementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownDisbursement, id)
	}
	return disbursement, nil
}

// GetDisbursement retrieves the disbursement of a loan application
func (s *LoanService) GetDisbursement(ctx context.Context, applicationID uuid.UUID) (*domain.LoanDisbursement, error) {
	disbursement, err := s.DisbursementRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, domain.ResolveNotFound(err, domain.ErrUnknownDisbursement, applicationID)
	}
	return disbursement, nil
}
