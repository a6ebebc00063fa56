package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// Summary represents the aggregated state of the loan book
type Summary struct {
	ApplicationsByStatus map[domain.LoanStatus]int
	TotalApplications    int
	ActiveLoans          int
	TotalDisbursed       decimal.Decimal
	OutstandingPrincipal decimal.Decimal
	TotalAdjusted        decimal.Decimal
	AdjustmentCount      int
}

// PortfolioService handles portfolio reporting
type PortfolioService struct {
	ApplicationRepo  domain.LoanApplicationRepository
	DisbursementRepo domain.DisbursementRepository
	AdjustmentRepo   domain.AdjustmentRepository
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(
	applicationRepo domain.LoanApplicationRepository,
	disbursementRepo domain.DisbursementRepository,
	adjustmentRepo domain.AdjustmentRepository,
) *PortfolioService {
	return &PortfolioService{
		ApplicationRepo:  applicationRepo,
		DisbursementRepo: disbursementRepo,
		AdjustmentRepo:   adjustmentRepo,
	}
}

// GetPortfolioSummary calculates the loan book totals
// Logic:
//   - Applications: count per status (legacy "disbursed" is counted as active)
//   - Disbursed: sum of every disbursement amount
//   - Outstanding: unpaid principal of disbursements whose application is still running
//   - Adjusted: sum of every adjustment amount
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context) (*Summary, error) {
	// 1. Count applications per status
	apps, err := s.ApplicationRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	summary := &Summary{
		ApplicationsByStatus: make(map[domain.LoanStatus]int),
		TotalApplications:    len(apps),
		TotalDisbursed:       decimal.Zero,
		OutstandingPrincipal: decimal.Zero,
		TotalAdjusted:        decimal.Zero,
	}
	running := make(map[uuid.UUID]bool, len(apps))
	for _, app := range apps {
		status := app.Status
		if app.IsActive() {
			status = domain.LoanStatusActive
			running[app.ID] = true
			summary.ActiveLoans++
		}
		summary.ApplicationsByStatus[status]++
	}

	// 2. Sum disbursed and outstanding principal
	disbursements, err := s.DisbursementRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list disbursements: %w", err)
	}
	for _, d := range disbursements {
		summary.TotalDisbursed = summary.TotalDisbursed.Add(d.Amount)
		if running[d.LoanApplicationID] {
			summary.OutstandingPrincipal = summary.OutstandingPrincipal.Add(d.OutstandingPrincipal())
		}
	}

	// 3. Sum adjustments
	adjustments, err := s.AdjustmentRepo.ListByApplication(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	for _, adj := range adjustments {
		summary.TotalAdjusted = summary.TotalAdjusted.Add(adj.Amount)
	}
	summary.AdjustmentCount = len(adjustments)

	return summary, nil
}
