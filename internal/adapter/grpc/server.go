package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	lendflowv1 "github.com/simaogato/lendflow-backend/internal/adapter/grpc/lendflowv1"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/account"
	"github.com/simaogato/lendflow-backend/internal/usecase/adjustment"
	"github.com/simaogato/lendflow-backend/internal/usecase/amortization"
	"github.com/simaogato/lendflow-backend/internal/usecase/catalog"
	"github.com/simaogato/lendflow-backend/internal/usecase/lifecycle"
	"github.com/simaogato/lendflow-backend/internal/usecase/portfolio"
	"github.com/simaogato/lendflow-backend/internal/usecase/repayment"
)

// Server implements the LendFlowService gRPC server
type Server struct {
	lendflowv1.UnimplementedLendFlowServiceServer

	AccountService    *account.AccountService
	CatalogService    *catalog.CatalogService
	LoanService       *lifecycle.LoanService
	AdjustmentService *adjustment.AdjustmentService
	RepaymentService  *repayment.RepaymentService
	PortfolioService  *portfolio.PortfolioService

	Now func() time.Time
}

// NewServer creates a new gRPC server instance
func NewServer(
	accountService *account.AccountService,
	catalogService *catalog.CatalogService,
	loanService *lifecycle.LoanService,
	adjustmentService *adjustment.AdjustmentService,
	repaymentService *repayment.RepaymentService,
	portfolioService *portfolio.PortfolioService,
) *Server {
	return &Server{
		AccountService:    accountService,
		CatalogService:    catalogService,
		LoanService:       loanService,
		AdjustmentService: adjustmentService,
		RepaymentService:  repaymentService,
		PortfolioService:  portfolioService,
		Now:               time.Now,
	}
}

// OpenAccount handles the OpenAccount RPC
func (s *Server) OpenAccount(ctx context.Context, req *lendflowv1.OpenAccountRequest) (*lendflowv1.OpenAccountResponse, error) {
	openingBalance := decimal.Zero
	if req.OpeningBalance != "" {
		var err error
		if openingBalance, err = parseAmount(req.OpeningBalance, "opening_balance"); err != nil {
			return nil, err
		}
	}

	acct, err := s.AccountService.OpenAccount(ctx, account.OpenAccountInput{
		BorrowerName:   req.BorrowerName,
		AccountNumber:  req.AccountNumber,
		BankID:         req.BankId,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: openingBalance,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.OpenAccountResponse{Account: accountToProto(acct)}, nil
}

// GetAccount handles the GetAccount RPC
func (s *Server) GetAccount(ctx context.Context, req *lendflowv1.GetAccountRequest) (*lendflowv1.GetAccountResponse, error) {
	accountID, err := parseID(req.AccountId, "account_id")
	if err != nil {
		return nil, err
	}

	acct, err := s.AccountService.GetAccount(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.GetAccountResponse{Account: accountToProto(acct)}, nil
}

// CreateBank handles the CreateBank RPC
func (s *Server) CreateBank(ctx context.Context, req *lendflowv1.CreateBankRequest) (*lendflowv1.CreateBankResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	bank, err := s.CatalogService.CreateBank(ctx, catalog.CreateBankInput{
		ID:                 req.Id,
		Name:               req.Name,
		Email:              req.Email,
		Address:            req.Address,
		Phone:              req.Phone,
		RegistrationNumber: req.RegistrationNumber,
		IsActive:           isActive,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.CreateBankResponse{Bank: bankToProto(bank)}, nil
}

// ListBanks handles the ListBanks RPC
func (s *Server) ListBanks(ctx context.Context, req *lendflowv1.ListBanksRequest) (*lendflowv1.ListBanksResponse, error) {
	banks, err := s.CatalogService.ListBanks(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &lendflowv1.ListBanksResponse{Banks: make([]*lendflowv1.Bank, 0, len(banks))}
	for _, b := range banks {
		resp.Banks = append(resp.Banks, bankToProto(b))
	}
	return resp, nil
}

// CreateLoanCategory handles the CreateLoanCategory RPC
func (s *Server) CreateLoanCategory(ctx context.Context, req *lendflowv1.CreateLoanCategoryRequest) (*lendflowv1.CreateLoanCategoryResponse, error) {
	category, err := s.CatalogService.CreateLoanCategory(ctx, catalog.CreateLoanCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		BankID:      req.BankId,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.CreateLoanCategoryResponse{Category: categoryToProto(category)}, nil
}

// ListLoanCategories handles the ListLoanCategories RPC
func (s *Server) ListLoanCategories(ctx context.Context, req *lendflowv1.ListLoanCategoriesRequest) (*lendflowv1.ListLoanCategoriesResponse, error) {
	categories, err := s.CatalogService.ListLoanCategories(ctx, req.BankId)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &lendflowv1.ListLoanCategoriesResponse{Categories: make([]*lendflowv1.LoanCategory, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, categoryToProto(c))
	}
	return resp, nil
}

// CreateLoanProduct handles the CreateLoanProduct RPC
func (s *Server) CreateLoanProduct(ctx context.Context, req *lendflowv1.CreateLoanProductRequest) (*lendflowv1.CreateLoanProductResponse, error) {
	rate, err := parseAmount(req.InterestRate, "interest_rate")
	if err != nil {
		return nil, err
	}
	minAmount, err := parseAmount(req.MinAmount, "min_amount")
	if err != nil {
		return nil, err
	}
	maxAmount, err := parseAmount(req.MaxAmount, "max_amount")
	if err != nil {
		return nil, err
	}

	product, err := s.CatalogService.CreateLoanProduct(ctx, catalog.CreateLoanProductInput{
		ProductCode:  req.ProductCode,
		Name:         req.Name,
		CategoryName: req.CategoryName,
		BankID:       req.BankId,
		InterestRate: rate,
		MinAmount:    minAmount,
		MaxAmount:    maxAmount,
		TenureMonths: int(req.TenureMonths),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.CreateLoanProductResponse{Product: productToProto(product)}, nil
}

// ListLoanProducts handles the ListLoanProducts RPC
func (s *Server) ListLoanProducts(ctx context.Context, req *lendflowv1.ListLoanProductsRequest) (*lendflowv1.ListLoanProductsResponse, error) {
	products, err := s.CatalogService.ListLoanProducts(ctx, req.BankId)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &lendflowv1.ListLoanProductsResponse{Products: make([]*lendflowv1.LoanProduct, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, productToProto(p))
	}
	return resp, nil
}

// SubmitApplication handles the SubmitApplication RPC. The caller is recorded as the applicant.
func (s *Server) SubmitApplication(ctx context.Context, req *lendflowv1.SubmitApplicationRequest) (*lendflowv1.SubmitApplicationResponse, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	accountID, err := parseID(req.AccountId, "account_id")
	if err != nil {
		return nil, err
	}
	productID, err := parseID(req.LoanProductId, "loan_product_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	app, err := s.LoanService.SubmitApplication(ctx, lifecycle.SubmitApplicationInput{
		AccountID:     accountID,
		LoanProductID: productID,
		Amount:        amount,
		AppliedBy:     actor.ID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.SubmitApplicationResponse{Application: applicationToProto(app)}, nil
}

// ApproveApplication handles the ApproveApplication RPC
func (s *Server) ApproveApplication(ctx context.Context, req *lendflowv1.ReviewApplicationRequest) (*lendflowv1.ReviewApplicationResponse, error) {
	return s.review(ctx, req, s.LoanService.ApproveApplication)
}

// RejectApplication handles the RejectApplication RPC
func (s *Server) RejectApplication(ctx context.Context, req *lendflowv1.ReviewApplicationRequest) (*lendflowv1.ReviewApplicationResponse, error) {
	return s.review(ctx, req, s.LoanService.RejectApplication)
}

func (s *Server) review(
	ctx context.Context,
	req *lendflowv1.ReviewApplicationRequest,
	decide func(context.Context, lifecycle.ReviewInput) (*domain.LoanApplication, error),
) (*lendflowv1.ReviewApplicationResponse, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	applicationID, err := parseID(req.ApplicationId, "application_id")
	if err != nil {
		return nil, err
	}

	app, err := decide(ctx, lifecycle.ReviewInput{
		ApplicationID: applicationID,
		ActorID:       actor.ID,
		Remarks:       req.Remarks,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.ReviewApplicationResponse{Application: applicationToProto(app)}, nil
}

// GetApplication handles the GetApplication RPC
func (s *Server) GetApplication(ctx context.Context, req *lendflowv1.GetApplicationRequest) (*lendflowv1.GetApplicationResponse, error) {
	applicationID, err := parseID(req.ApplicationId, "application_id")
	if err != nil {
		return nil, err
	}

	app, err := s.LoanService.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.GetApplicationResponse{Application: applicationToProto(app)}, nil
}

// ListApplications handles the ListApplications RPC
func (s *Server) ListApplications(ctx context.Context, req *lendflowv1.ListApplicationsRequest) (*lendflowv1.ListApplicationsResponse, error) {
	apps, err := s.LoanService.ListApplications(ctx, domain.LoanStatus(req.Status))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &lendflowv1.ListApplicationsResponse{Applications: make([]*lendflowv1.LoanApplication, 0, len(apps))}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, applicationToProto(app))
	}
	return resp, nil
}

// ListDisbursableApplications handles the ListDisbursableApplications RPC
func (s *Server) ListDisbursableApplications(ctx context.Context, req *lendflowv1.ListDisbursableApplicationsRequest) (*lendflowv1.ListDisbursableApplicationsResponse, error) {
	apps, err := s.LoanService.ListDisbursable(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &lendflowv1.ListDisbursableApplicationsResponse{Applications: make([]*lendflowv1.LoanApplication, 0, len(apps))}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, applicationToProto(app))
	}
	return resp, nil
}

// DisburseLoan handles the DisburseLoan RPC. The caller is recorded as the disbursing officer.
func (s *Server) DisburseLoan(ctx context.Context, req *lendflowv1.DisburseLoanRequest) (*lendflowv1.DisburseLoanResponse, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	applicationID, err := parseID(req.ApplicationId, "application_id")
	if err != nil {
		return nil, err
	}

	disbursement, err := s.LoanService.DisburseLoan(ctx, lifecycle.DisburseInput{
		ApplicationID: applicationID,
		DisbursedBy:   actor.ID,
		DisbursedTo:   req.DisbursedTo,
		DisbursedAt:   optionalTime(req.DisbursedAt),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.DisburseLoanResponse{Disbursement: disbursementToProto(disbursement)}, nil
}

// GetDisbursement handles the GetDisbursement RPC.
// disbursement_id takes precedence over application_id.
func (s *Server) GetDisbursement(ctx context.Context, req *lendflowv1.GetDisbursementRequest) (*lendflowv1.GetDisbursementResponse, error) {
	lookup := s.LoanService.GetDisbursement
	field, value := "application_id", req.ApplicationId
	if req.DisbursementId != "" {
		lookup = s.LoanService.GetDisbursementByID
		field, value = "disbursement_id", req.DisbursementId
	}

	id, err := parseID(value, field)
	if err != nil {
		return nil, err
	}

	disbursement, err := lookup(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.GetDisbursementResponse{Disbursement: disbursementToProto(disbursement)}, nil
}

// ApplyAdjustment handles the ApplyAdjustment RPC. The caller is recorded as the approver.
func (s *Server) ApplyAdjustment(ctx context.Context, req *lendflowv1.ApplyAdjustmentRequest) (*lendflowv1.ApplyAdjustmentResponse, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	applicationID, err := parseID(req.ApplicationId, "application_id")
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	result, err := s.AdjustmentService.ApplyAdjustment(ctx, adjustment.ApplyAdjustmentInput{
		ApplicationID: applicationID,
		Type:          domain.AdjustmentType(req.AdjustmentType),
		Amount:        amount,
		Reason:        req.Reason,
		ApprovedBy:    actor.ID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.ApplyAdjustmentResponse{
		Adjustment: adjustmentToProto(result.Adjustment),
		Balance:    result.Balance.StringFixed(2),
		Status:     string(result.Status),
	}, nil
}

// ListAdjustments handles the ListAdjustments RPC
func (s *Server) ListAdjustments(ctx context.Context, req *lendflowv1.ListAdjustmentsRequest) (*lendflowv1.ListAdjustmentsResponse, error) {
	var applicationID *uuid.UUID
	if req.ApplicationId != "" {
		id, err := parseID(req.ApplicationId, "application_id")
		if err != nil {
			return nil, err
		}
		applicationID = &id
	}

	adjustments, err := s.AdjustmentService.ListAdjustments(ctx, applicationID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &lendflowv1.ListAdjustmentsResponse{Adjustments: make([]*lendflowv1.Adjustment, 0, len(adjustments))}
	for _, adj := range adjustments {
		resp.Adjustments = append(resp.Adjustments, adjustmentToProto(adj))
	}
	return resp, nil
}

// MarkInstallmentPaid handles the MarkInstallmentPaid RPC
func (s *Server) MarkInstallmentPaid(ctx context.Context, req *lendflowv1.MarkInstallmentPaidRequest) (*lendflowv1.MarkInstallmentPaidResponse, error) {
	applicationID, err := parseID(req.ApplicationId, "application_id")
	if err != nil {
		return nil, err
	}

	disbursement, err := s.RepaymentService.MarkInstallmentPaid(ctx, repayment.MarkInstallmentPaidInput{
		ApplicationID:     applicationID,
		InstallmentNumber: int(req.InstallmentNumber),
		PaidAt:            optionalTime(req.PaidAt),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.MarkInstallmentPaidResponse{Disbursement: disbursementToProto(disbursement)}, nil
}

// MarkOverdueInstallments handles the MarkOverdueInstallments RPC. AsOf defaults to now.
func (s *Server) MarkOverdueInstallments(ctx context.Context, req *lendflowv1.MarkOverdueInstallmentsRequest) (*lendflowv1.MarkOverdueInstallmentsResponse, error) {
	asOf := optionalTime(req.AsOf)
	if asOf.IsZero() {
		asOf = s.Now()
	}

	updated, err := s.RepaymentService.MarkOverdueInstallments(ctx, asOf)
	if err != nil {
		return nil, mapError(err)
	}

	return &lendflowv1.MarkOverdueInstallmentsResponse{Updated: int32(updated)}, nil
}

// PreviewSchedule handles the PreviewSchedule RPC without persisting anything
func (s *Server) PreviewSchedule(ctx context.Context, req *lendflowv1.PreviewScheduleRequest) (*lendflowv1.PreviewScheduleResponse, error) {
	principal, err := parseAmount(req.Principal, "principal")
	if err != nil {
		return nil, err
	}
	rate, err := parseAmount(req.InterestRate, "interest_rate")
	if err != nil {
		return nil, err
	}
	startDate := optionalTime(req.StartDate)
	if startDate.IsZero() {
		startDate = s.Now()
	}

	schedule, err := amortization.GenerateRepaymentSchedule(principal, rate, int(req.TenureMonths), startDate)
	if err != nil {
		return nil, mapError(err)
	}
	summary := amortization.Summarize(schedule)

	return &lendflowv1.PreviewScheduleResponse{
		Emi:           summary.EMI.StringFixed(2),
		TotalPayable:  summary.TotalPayable.StringFixed(2),
		TotalInterest: summary.TotalInterest.StringFixed(2),
		Schedule:      scheduleToProto(schedule),
	}, nil
}

// GetPortfolioSummary handles the GetPortfolioSummary RPC
func (s *Server) GetPortfolioSummary(ctx context.Context, req *lendflowv1.GetPortfolioSummaryRequest) (*lendflowv1.GetPortfolioSummaryResponse, error) {
	summary, err := s.PortfolioService.GetPortfolioSummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	byStatus := make(map[string]int32, len(summary.ApplicationsByStatus))
	for st, n := range summary.ApplicationsByStatus {
		byStatus[string(st)] = int32(n)
	}

	return &lendflowv1.GetPortfolioSummaryResponse{
		ApplicationsByStatus: byStatus,
		TotalApplications:    int32(summary.TotalApplications),
		ActiveLoans:          int32(summary.ActiveLoans),
		TotalDisbursed:       summary.TotalDisbursed.StringFixed(2),
		OutstandingPrincipal: summary.OutstandingPrincipal.StringFixed(2),
		TotalAdjusted:        summary.TotalAdjusted.StringFixed(2),
		AdjustmentCount:      int32(summary.AdjustmentCount),
	}, nil
}

func requireActor(ctx context.Context) (Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.ID == "" {
		return Actor{}, status.Error(codes.Unauthenticated, "caller identity is required")
	}
	return actor, nil
}

func parseID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseAmount(value, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

// optionalTime returns the zero time for an unset timestamp
func optionalTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func accountToProto(a *domain.Account) *lendflowv1.Account {
	return &lendflowv1.Account{
		Id:            a.ID.String(),
		BorrowerName:  a.BorrowerName,
		AccountNumber: a.AccountNumber,
		BankId:        a.BankID,
		Email:         a.Email,
		Phone:         a.Phone,
		Address:       a.Address,
		Balance:       a.Balance.StringFixed(2),
		Version:       a.Version,
		CreatedAt:     timestamppb.New(a.CreatedAt),
	}
}

func bankToProto(b *domain.Bank) *lendflowv1.Bank {
	return &lendflowv1.Bank{
		Id:                 b.ID,
		Name:               b.Name,
		Email:              b.Email,
		Address:            b.Address,
		Phone:              b.Phone,
		RegistrationNumber: b.RegistrationNumber,
		IsActive:           b.IsActive,
		CreatedAt:          timestamppb.New(b.CreatedAt),
	}
}

func categoryToProto(c *domain.LoanCategory) *lendflowv1.LoanCategory {
	return &lendflowv1.LoanCategory{
		Id:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		BankId:      c.BankID,
		CreatedAt:   timestamppb.New(c.CreatedAt),
	}
}

func productToProto(p *domain.LoanProduct) *lendflowv1.LoanProduct {
	return &lendflowv1.LoanProduct{
		Id:           p.ID.String(),
		ProductCode:  p.ProductCode,
		Name:         p.Name,
		CategoryName: p.CategoryName,
		BankId:       p.BankID,
		InterestRate: p.InterestRate.String(),
		MinAmount:    p.MinAmount.StringFixed(2),
		MaxAmount:    p.MaxAmount.StringFixed(2),
		TenureMonths: int32(p.TenureMonths),
		CreatedAt:    timestamppb.New(p.CreatedAt),
	}
}

func applicationToProto(a *domain.LoanApplication) *lendflowv1.LoanApplication {
	return &lendflowv1.LoanApplication{
		Id:                a.ID.String(),
		ApplicationNumber: a.ApplicationNumber,
		AccountId:         a.AccountID.String(),
		LoanProductId:     a.LoanProductID.String(),
		BankId:            a.BankID,
		Amount:            a.Amount.StringFixed(2),
		InterestRate:      a.InterestRate.String(),
		TenureMonths:      int32(a.TenureMonths),
		Status:            string(a.Status),
		AppliedBy:         a.AppliedBy,
		AppliedAt:         timestamppb.New(a.AppliedAt),
		ReviewedBy:        a.ReviewedBy,
		ReviewedAt:        optionalTimestamp(a.ReviewedAt),
		Remarks:           a.Remarks,
		Version:           a.Version,
	}
}

func scheduleToProto(schedule []domain.Installment) []*lendflowv1.Installment {
	out := make([]*lendflowv1.Installment, 0, len(schedule))
	for _, inst := range schedule {
		out = append(out, &lendflowv1.Installment{
			Number:          int32(inst.Number),
			DueDate:         timestamppb.New(inst.DueDate),
			PrincipalAmount: inst.PrincipalAmount.StringFixed(2),
			InterestAmount:  inst.InterestAmount.StringFixed(2),
			TotalAmount:     inst.TotalAmount.StringFixed(2),
			Status:          string(inst.Status),
			PaidAt:          optionalTimestamp(inst.PaidAt),
		})
	}
	return out
}

func disbursementToProto(d *domain.LoanDisbursement) *lendflowv1.Disbursement {
	return &lendflowv1.Disbursement{
		Id:                 d.ID.String(),
		DisbursementNumber: d.DisbursementNumber,
		LoanApplicationId:  d.LoanApplicationID.String(),
		AccountId:          d.AccountID.String(),
		Amount:             d.Amount.StringFixed(2),
		DisbursedTo:        d.DisbursedTo,
		DisbursedBy:        d.DisbursedBy,
		DisbursedAt:        timestamppb.New(d.DisbursedAt),
		Schedule:           scheduleToProto(d.RepaymentSchedule),
		Version:            d.Version,
	}
}

func adjustmentToProto(a *domain.LoanAdjustment) *lendflowv1.Adjustment {
	return &lendflowv1.Adjustment{
		Id:                a.ID.String(),
		AdjustmentNumber:  a.AdjustmentNumber,
		LoanApplicationId: a.LoanApplicationID.String(),
		AccountId:         a.AccountID.String(),
		AdjustmentType:    string(a.Type),
		Amount:            a.Amount.StringFixed(2),
		Reason:            a.Reason,
		ApprovedBy:        a.ApprovedBy,
		AdjustedAt:        timestamppb.New(a.AdjustedAt),
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	case errors.Is(err, domain.ErrInvalidTransition):
		return status.Errorf(codes.FailedPrecondition, "%s", errorMsg)
	case errors.Is(err, domain.ErrAlreadyDisbursed),
		errors.Is(err, domain.ErrAlreadyExists):
		return status.Errorf(codes.AlreadyExists, "%s", errorMsg)
	case errors.Is(err, domain.ErrUnknownAccount),
		errors.Is(err, domain.ErrUnknownApplication),
		errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrUnknownDisbursement),
		errors.Is(err, domain.ErrUnknownBank),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	case errors.Is(err, domain.ErrVersionConflict):
		return status.Errorf(codes.Aborted, "%s", errorMsg)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", errorMsg)
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
