package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	lendflowv1 "github.com/simaogato/lendflow-backend/internal/adapter/grpc/lendflowv1"
	"github.com/simaogato/lendflow-backend/internal/adapter/notification"
	"github.com/simaogato/lendflow-backend/internal/adapter/repository/redisstore"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/account"
	"github.com/simaogato/lendflow-backend/internal/usecase/adjustment"
	"github.com/simaogato/lendflow-backend/internal/usecase/catalog"
	"github.com/simaogato/lendflow-backend/internal/usecase/lifecycle"
	"github.com/simaogato/lendflow-backend/internal/usecase/portfolio"
	"github.com/simaogato/lendflow-backend/internal/usecase/repayment"
	"github.com/simaogato/lendflow-backend/internal/usecase/seeder"
)

const (
	bufSize   = 1024 * 1024
	testToken = "test-token"
)

// startServer wires the full service over a miniredis-backed store and returns a client
func startServer(t *testing.T) *lendflowv1.LendFlowServiceClient {
	t.Helper()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisstore.New(client, "it")
	banks := redisstore.NewBankRepository(store)
	categories := redisstore.NewLoanCategoryRepository(store)
	accounts := redisstore.NewAccountRepository(store)
	products := redisstore.NewLoanProductRepository(store)
	applications := redisstore.NewLoanApplicationRepository(store)
	disbursements := redisstore.NewDisbursementRepository(store)
	adjustments := redisstore.NewAdjustmentRepository(store)
	txManager := redisstore.NewTransactionManager(store)
	log := zap.NewNop()

	require.NoError(t, seeder.NewCatalogSeeder(banks, categories, products).Seed(ctx))

	srv := NewServer(
		account.NewAccountService(accounts, banks),
		catalog.NewCatalogService(banks, categories, products),
		lifecycle.NewLoanService(accounts, products, applications, disbursements, txManager, notification.NewLogNotifier(log), log),
		adjustment.NewAdjustmentService(accounts, applications, adjustments, txManager, log),
		repayment.NewRepaymentService(applications, disbursements, txManager, log),
		portfolio.NewPortfolioService(applications, disbursements, adjustments),
	)
	srv.Now = func() time.Time { return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) }

	lis := bufconn.Listen(bufSize)
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		AuthInterceptor(testToken),
		ActorInterceptor(DefaultPolicy()),
	))
	lendflowv1.RegisterLendFlowServiceServer(grpcSrv, srv)
	go func() {
		_ = grpcSrv.Serve(lis)
	}()
	t.Cleanup(grpcSrv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return lendflowv1.NewLendFlowServiceClient(conn)
}

func as(actorID string, role Role) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+testToken,
		ActorIDHeader, actorID,
		ActorRoleHeader, string(role),
	)
}

func TestServer_LoanLifecycle(t *testing.T) {
	client := startServer(t)
	clerk := as("clerk-1", RoleBankEmployee)
	manager := as("manager-1", RoleBank)
	regulator := as("reg-1", RoleRegulator)
	admin := as("admin-1", RoleAdmin)

	opened, err := client.OpenAccount(clerk, &lendflowv1.OpenAccountRequest{
		BorrowerName:   "Ana Borrower",
		AccountNumber:  "ACC-100",
		BankId:         seeder.DefaultBankID,
		Email:          "ana@example.com",
		OpeningBalance: "10000",
	})
	require.NoError(t, err)
	assert.Equal(t, "10000.00", opened.Account.Balance)

	submitted, err := client.SubmitApplication(clerk, &lendflowv1.SubmitApplicationRequest{
		AccountId:     opened.Account.Id,
		LoanProductId: seeder.PRODUCT_PERSONAL.String(),
		Amount:        "12000",
	})
	require.NoError(t, err)
	app := submitted.Application
	assert.Equal(t, "pending", app.Status)
	assert.Equal(t, "clerk-1", app.AppliedBy)
	assert.Equal(t, int32(12), app.TenureMonths)

	_, err = client.ApproveApplication(regulator, &lendflowv1.ReviewApplicationRequest{ApplicationId: app.Id})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	approved, err := client.ApproveApplication(manager, &lendflowv1.ReviewApplicationRequest{ApplicationId: app.Id})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Application.Status)
	assert.Equal(t, "manager-1", approved.Application.ReviewedBy)
	require.NotNil(t, approved.Application.ReviewedAt)

	fetchedApp, err := client.GetApplication(regulator, &lendflowv1.GetApplicationRequest{ApplicationId: app.Id})
	require.NoError(t, err)
	assert.Equal(t, "approved", fetchedApp.Application.Status)
	assert.Equal(t, "manager-1", fetchedApp.Application.ReviewedBy)
	assert.Equal(t, seeder.DefaultBankID, fetchedApp.Application.BankId)

	byStatus, err := client.ListApplications(regulator, &lendflowv1.ListApplicationsRequest{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, byStatus.Applications, 1)
	assert.Equal(t, app.Id, byStatus.Applications[0].Id)

	stillPending, err := client.ListApplications(regulator, &lendflowv1.ListApplicationsRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, stillPending.Applications)

	disbursable, err := client.ListDisbursableApplications(regulator, &lendflowv1.ListDisbursableApplicationsRequest{})
	require.NoError(t, err)
	require.Len(t, disbursable.Applications, 1)
	assert.Equal(t, app.Id, disbursable.Applications[0].Id)

	disbursed, err := client.DisburseLoan(manager, &lendflowv1.DisburseLoanRequest{
		ApplicationId: app.Id,
		DisbursedAt:   timestamppb.New(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	d := disbursed.Disbursement
	assert.Equal(t, "ACC-100", d.DisbursedTo)
	assert.Equal(t, "manager-1", d.DisbursedBy)
	require.Len(t, d.Schedule, 12)
	first := d.Schedule[0]
	assert.Equal(t, int32(1), first.Number)
	assert.True(t, first.DueDate.AsTime().Equal(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "946.19", first.PrincipalAmount)
	assert.Equal(t, "120.00", first.InterestAmount)
	assert.Equal(t, "1066.19", first.TotalAmount)

	_, err = client.DisburseLoan(manager, &lendflowv1.DisburseLoanRequest{ApplicationId: app.Id})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	byID, err := client.GetDisbursement(regulator, &lendflowv1.GetDisbursementRequest{DisbursementId: d.Id})
	require.NoError(t, err)
	assert.Equal(t, d.DisbursementNumber, byID.Disbursement.DisbursementNumber)
	assert.Equal(t, app.Id, byID.Disbursement.LoanApplicationId)

	_, err = client.GetDisbursement(regulator, &lendflowv1.GetDisbursementRequest{DisbursementId: "00000000-0000-0000-0000-00000000beef"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	fetched, err := client.GetAccount(regulator, &lendflowv1.GetAccountRequest{AccountId: opened.Account.Id})
	require.NoError(t, err)
	assert.Equal(t, "22000.00", fetched.Account.Balance)

	paid, err := client.MarkInstallmentPaid(clerk, &lendflowv1.MarkInstallmentPaidRequest{ApplicationId: app.Id, InstallmentNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Disbursement.Schedule[0].Status)
	assert.Equal(t, "pending", paid.Disbursement.Schedule[1].Status)

	waived, err := client.ApplyAdjustment(manager, &lendflowv1.ApplyAdjustmentRequest{
		ApplicationId:  app.Id,
		AdjustmentType: "penalty_waiver",
		Amount:         "100",
		Reason:         "late fee waived",
	})
	require.NoError(t, err)
	assert.Equal(t, "22000.00", waived.Balance)
	assert.Equal(t, "active", waived.Status)

	closed, err := client.ApplyAdjustment(manager, &lendflowv1.ApplyAdjustmentRequest{
		ApplicationId:  app.Id,
		AdjustmentType: "early_closure",
		Amount:         "500",
		Reason:         "settled early",
	})
	require.NoError(t, err)
	assert.Equal(t, "21500.00", closed.Balance)
	assert.Equal(t, "closed", closed.Status)
	assert.Equal(t, "manager-1", closed.Adjustment.ApprovedBy)

	_, err = client.ApplyAdjustment(manager, &lendflowv1.ApplyAdjustmentRequest{
		ApplicationId:  app.Id,
		AdjustmentType: "overpayment",
		Amount:         "1",
		Reason:         "too late",
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	listed, err := client.ListAdjustments(regulator, &lendflowv1.ListAdjustmentsRequest{ApplicationId: app.Id})
	require.NoError(t, err)
	require.Len(t, listed.Adjustments, 2)
	assert.Equal(t, "penalty_waiver", listed.Adjustments[0].AdjustmentType)
	assert.Equal(t, "early_closure", listed.Adjustments[1].AdjustmentType)

	summary, err := client.GetPortfolioSummary(admin, &lendflowv1.GetPortfolioSummaryRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), summary.TotalApplications)
	assert.Equal(t, int32(1), summary.ApplicationsByStatus["closed"])
	assert.Equal(t, int32(0), summary.ActiveLoans)
	assert.Equal(t, "12000.00", summary.TotalDisbursed)
	assert.Equal(t, "0.00", summary.OutstandingPrincipal)
	assert.Equal(t, "600.00", summary.TotalAdjusted)
	assert.Equal(t, int32(2), summary.AdjustmentCount)
}

func TestServer_RejectAndErrors(t *testing.T) {
	client := startServer(t)
	clerk := as("clerk-1", RoleBankEmployee)

	opened, err := client.OpenAccount(clerk, &lendflowv1.OpenAccountRequest{BorrowerName: "Bo", AccountNumber: "ACC-200"})
	require.NoError(t, err)
	assert.Equal(t, "0.00", opened.Account.Balance)

	t.Run("amount outside product range", func(t *testing.T) {
		_, err := client.SubmitApplication(clerk, &lendflowv1.SubmitApplicationRequest{
			AccountId:     opened.Account.Id,
			LoanProductId: seeder.PRODUCT_PERSONAL.String(),
			Amount:        "999999",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("rejected application cannot be disbursed", func(t *testing.T) {
		submitted, err := client.SubmitApplication(clerk, &lendflowv1.SubmitApplicationRequest{
			AccountId:     opened.Account.Id,
			LoanProductId: seeder.PRODUCT_PERSONAL.String(),
			Amount:        "5000",
		})
		require.NoError(t, err)

		rejected, err := client.RejectApplication(clerk, &lendflowv1.ReviewApplicationRequest{
			ApplicationId: submitted.Application.Id,
			Remarks:       "insufficient income",
		})
		require.NoError(t, err)
		assert.Equal(t, "rejected", rejected.Application.Status)
		assert.Equal(t, "insufficient income", rejected.Application.Remarks)

		_, err = client.DisburseLoan(clerk, &lendflowv1.DisburseLoanRequest{ApplicationId: submitted.Application.Id})
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))

		_, err = client.GetDisbursement(clerk, &lendflowv1.GetDisbursementRequest{ApplicationId: submitted.Application.Id})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("malformed ids", func(t *testing.T) {
		_, err := client.GetAccount(clerk, &lendflowv1.GetAccountRequest{AccountId: "not-a-uuid"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = client.GetApplication(clerk, &lendflowv1.GetApplicationRequest{ApplicationId: "APP-1"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("application reads", func(t *testing.T) {
		_, err := client.GetApplication(clerk, &lendflowv1.GetApplicationRequest{ApplicationId: "00000000-0000-0000-0000-00000000dead"})
		assert.Equal(t, codes.NotFound, status.Code(err))

		_, err = client.ListApplications(clerk, &lendflowv1.ListApplicationsRequest{Status: "archived"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		all, err := client.ListApplications(clerk, &lendflowv1.ListApplicationsRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, all.Applications)
	})

	t.Run("account at an unknown bank", func(t *testing.T) {
		_, err := client.OpenAccount(clerk, &lendflowv1.OpenAccountRequest{BorrowerName: "Cy", AccountNumber: "ACC-300", BankId: "ghost"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := client.GetAccount(clerk, &lendflowv1.GetAccountRequest{AccountId: "00000000-0000-0000-0000-00000000dead"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("missing token", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), ActorIDHeader, "clerk-1", ActorRoleHeader, "bank")
		_, err := client.ListLoanProducts(ctx, &lendflowv1.ListLoanProductsRequest{})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("catalog", func(t *testing.T) {
		_, err := client.CreateLoanProduct(clerk, &lendflowv1.CreateLoanProductRequest{
			ProductCode:  "SB-6",
			Name:         "Small Business",
			BankId:       "north",
			InterestRate: "14.5",
			MinAmount:    "500",
			MaxAmount:    "5000",
			TenureMonths: 6,
		})
		assert.Equal(t, codes.NotFound, status.Code(err), "bank not registered yet")

		_, err = client.CreateBank(as("admin-1", RoleAdmin), &lendflowv1.CreateBankRequest{
			Id:                 "north",
			Name:               "North Bank",
			Email:              "ops@north.example",
			RegistrationNumber: "REG-N",
		})
		require.NoError(t, err)

		created, err := client.CreateLoanProduct(clerk, &lendflowv1.CreateLoanProductRequest{
			ProductCode:  "SB-6",
			Name:         "Small Business",
			BankId:       "north",
			InterestRate: "14.5",
			MinAmount:    "500",
			MaxAmount:    "5000",
			TenureMonths: 6,
		})
		require.NoError(t, err)
		assert.Equal(t, "14.5", created.Product.InterestRate)

		north, err := client.ListLoanProducts(clerk, &lendflowv1.ListLoanProductsRequest{BankId: "north"})
		require.NoError(t, err)
		require.Len(t, north.Products, 1)
		assert.Equal(t, "SB-6", north.Products[0].ProductCode)

		all, err := client.ListLoanProducts(clerk, &lendflowv1.ListLoanProductsRequest{})
		require.NoError(t, err)
		assert.Len(t, all.Products, len(seeder.DefaultProducts())+1)
	})
}

func TestServer_BanksAndCategories(t *testing.T) {
	client := startServer(t)
	admin := as("admin-1", RoleAdmin)
	manager := as("manager-1", RoleBank)
	regulator := as("reg-1", RoleRegulator)

	inactive := false
	created, err := client.CreateBank(admin, &lendflowv1.CreateBankRequest{
		Id:                 "south",
		Name:               "South Bank",
		Email:              "ops@south.example",
		RegistrationNumber: "REG-S",
		IsActive:           &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.Bank.IsActive)

	_, err = client.CreateBank(admin, &lendflowv1.CreateBankRequest{
		Id:                 "south",
		Name:               "South Again",
		Email:              "ops@south.example",
		RegistrationNumber: "REG-S2",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.CreateBank(manager, &lendflowv1.CreateBankRequest{Id: "east", Name: "East", Email: "e@east.example", RegistrationNumber: "E"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	banks, err := client.ListBanks(regulator, &lendflowv1.ListBanksRequest{})
	require.NoError(t, err)
	require.Len(t, banks.Banks, 2)
	assert.Equal(t, seeder.DefaultBankID, banks.Banks[0].Id)

	_, err = client.CreateLoanCategory(manager, &lendflowv1.CreateLoanCategoryRequest{Name: "Marine", BankId: "south"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "inactive bank")

	category, err := client.CreateLoanCategory(manager, &lendflowv1.CreateLoanCategoryRequest{
		Name:        "Agriculture",
		Description: "Seasonal crop finance",
		BankId:      seeder.DefaultBankID,
	})
	require.NoError(t, err)
	assert.Equal(t, seeder.DefaultBankID, category.Category.BankId)

	_, err = client.CreateLoanCategory(manager, &lendflowv1.CreateLoanCategoryRequest{Name: "housing"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	listed, err := client.ListLoanCategories(regulator, &lendflowv1.ListLoanCategoriesRequest{BankId: seeder.DefaultBankID})
	require.NoError(t, err)
	assert.Len(t, listed.Categories, len(seeder.DefaultCategories())+1)

	_, err = client.CreateLoanProduct(manager, &lendflowv1.CreateLoanProductRequest{
		ProductCode:  "AG-12",
		Name:         "Crop Loan",
		CategoryName: "Fishing",
		BankId:       seeder.DefaultBankID,
		InterestRate: "7",
		MinAmount:    "1000",
		MaxAmount:    "20000",
		TenureMonths: 12,
	})
	assert.Equal(t, codes.NotFound, status.Code(err), "unknown category")

	product, err := client.CreateLoanProduct(manager, &lendflowv1.CreateLoanProductRequest{
		ProductCode:  "AG-12",
		Name:         "Crop Loan",
		CategoryName: "agriculture",
		BankId:       seeder.DefaultBankID,
		InterestRate: "7",
		MinAmount:    "1000",
		MaxAmount:    "20000",
		TenureMonths: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "Agriculture", product.Product.CategoryName)
}

func TestServer_PreviewSchedule(t *testing.T) {
	client := startServer(t)
	ctx := as("reg-1", RoleRegulator)

	preview, err := client.PreviewSchedule(ctx, &lendflowv1.PreviewScheduleRequest{
		Principal:    "12000",
		InterestRate: "12",
		TenureMonths: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "1066.19", preview.Emi)
	assert.Equal(t, "12794.23", preview.TotalPayable)
	assert.Equal(t, "794.23", preview.TotalInterest)
	require.Len(t, preview.Schedule, 12)
	assert.True(t, preview.Schedule[0].DueDate.AsTime().Equal(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))

	for _, tenure := range []int32{0, domain.MaxTenureMonths + 1, 2_000_000} {
		_, err = client.PreviewSchedule(ctx, &lendflowv1.PreviewScheduleRequest{Principal: "12000", InterestRate: "12", TenureMonths: tenure})
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "tenure %d", tenure)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("%w: bad", domain.ErrInvalidInput), codes.InvalidArgument},
		{fmt.Errorf("%w: pending -> active", domain.ErrInvalidTransition), codes.FailedPrecondition},
		{domain.ErrAlreadyDisbursed, codes.AlreadyExists},
		{fmt.Errorf("account x: %w", domain.ErrAlreadyExists), codes.AlreadyExists},
		{fmt.Errorf("%w: north", domain.ErrUnknownBank), codes.NotFound},
		{fmt.Errorf("%w: Marine", domain.ErrUnknownCategory), codes.NotFound},
		{fmt.Errorf("%w: x", domain.ErrUnknownAccount), codes.NotFound},
		{fmt.Errorf("%w: x", domain.ErrUnknownApplication), codes.NotFound},
		{fmt.Errorf("%w: x", domain.ErrUnknownProduct), codes.NotFound},
		{fmt.Errorf("wrapped: %w", domain.ErrVersionConflict), codes.Aborted},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(mapError(tt.err)))
		})
	}
	assert.NoError(t, mapError(nil))
}
