//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/adapter/notification"
	"github.com/simaogato/lendflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/account"
	"github.com/simaogato/lendflow-backend/internal/usecase/adjustment"
	"github.com/simaogato/lendflow-backend/internal/usecase/lifecycle"
	"github.com/simaogato/lendflow-backend/internal/usecase/seeder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// startPostgresContainer starts a PostgreSQL testcontainer and returns the connection URL.
func startPostgresContainer(t *testing.T, ctx context.Context) string {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func TestLoanLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	db, err := postgres.NewDB(ctx, startPostgresContainer(t, ctx))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx), "migrations are re-runnable")

	banks := postgres.NewBankRepository(db)
	categories := postgres.NewLoanCategoryRepository(db)
	accounts := postgres.NewAccountRepository(db)
	products := postgres.NewLoanProductRepository(db)
	applications := postgres.NewLoanApplicationRepository(db)
	disbursements := postgres.NewDisbursementRepository(db)
	adjustments := postgres.NewAdjustmentRepository(db)
	txManager := postgres.NewTransactionManager(db)
	log := zap.NewNop()

	catalogSeeder := seeder.NewCatalogSeeder(banks, categories, products)
	require.NoError(t, catalogSeeder.Seed(ctx))
	require.NoError(t, catalogSeeder.Seed(ctx), "seeding is idempotent")

	accountService := account.NewAccountService(accounts, banks)
	loanService := lifecycle.NewLoanService(accounts, products, applications, disbursements, txManager,
		notification.NewLogNotifier(log), log)
	adjustmentService := adjustment.NewAdjustmentService(accounts, applications, adjustments, txManager, log)

	acct, err := accountService.OpenAccount(ctx, account.OpenAccountInput{
		BorrowerName:   "Integration Borrower",
		AccountNumber:  "ACC-IT-1",
		BankID:         seeder.DefaultBankID,
		Email:          "it@example.com",
		OpeningBalance: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	app, err := loanService.SubmitApplication(ctx, lifecycle.SubmitApplicationInput{
		AccountID:     acct.ID,
		LoanProductID: seeder.PRODUCT_PERSONAL,
		Amount:        decimal.NewFromInt(12000),
		AppliedBy:     "clerk",
	})
	require.NoError(t, err)

	_, err = loanService.ApproveApplication(ctx, lifecycle.ReviewInput{ApplicationID: app.ID, ActorID: "manager"})
	require.NoError(t, err)

	disbursable, err := loanService.ListDisbursable(ctx)
	require.NoError(t, err)
	require.Len(t, disbursable, 1)

	disbursedAt := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	disbursement, err := loanService.DisburseLoan(ctx, lifecycle.DisburseInput{
		ApplicationID: app.ID,
		DisbursedBy:   "officer",
		DisbursedAt:   disbursedAt,
	})
	require.NoError(t, err)

	t.Run("schedule round-trips through JSONB", func(t *testing.T) {
		stored, err := disbursements.GetByApplicationID(ctx, app.ID)
		require.NoError(t, err)
		require.Len(t, stored.RepaymentSchedule, 12)
		assert.Equal(t, disbursement.DisbursementNumber, stored.DisbursementNumber)
		assert.True(t, stored.RepaymentSchedule[0].DueDate.Equal(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
		assert.True(t, stored.RepaymentSchedule[0].PrincipalAmount.Equal(decimal.RequireFromString("946.19")))
	})

	t.Run("disbursement credits the account and activates the loan", func(t *testing.T) {
		stored, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		assert.True(t, stored.Balance.Equal(decimal.NewFromInt(22000)), "got %s", stored.Balance)

		storedApp, err := applications.GetByID(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LoanStatusActive, storedApp.Status)
		assert.Equal(t, "manager", storedApp.ReviewedBy)
	})

	t.Run("second disbursement fails", func(t *testing.T) {
		_, err := loanService.DisburseLoan(ctx, lifecycle.DisburseInput{ApplicationID: app.ID, DisbursedBy: "officer"})
		assert.ErrorIs(t, err, domain.ErrAlreadyDisbursed)
	})

	t.Run("unique index backs the one-disbursement rule", func(t *testing.T) {
		dup := *disbursement
		dup.ID = uuid.New()
		dup.DisbursementNumber = "DIS-999999-DUPE"
		err := disbursements.Create(ctx, &dup)
		assert.ErrorIs(t, err, domain.ErrAlreadyDisbursed)
	})

	t.Run("early closure reduces balance and closes the loan", func(t *testing.T) {
		result, err := adjustmentService.ApplyAdjustment(ctx, adjustment.ApplyAdjustmentInput{
			ApplicationID: app.ID,
			Type:          domain.AdjustmentTypeEarlyClosure,
			Amount:        decimal.NewFromInt(500),
			Reason:        "settled",
			ApprovedBy:    "officer",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.LoanStatusClosed, result.Status)
		assert.True(t, result.Balance.Equal(decimal.NewFromInt(21500)))

		listed, err := adjustments.ListByApplication(ctx, &app.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, domain.AdjustmentTypeEarlyClosure, listed[0].Type)
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		stale, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		fresh := *stale

		fresh.ApplyDelta(decimal.NewFromInt(1))
		require.NoError(t, accounts.Update(ctx, &fresh))

		stale.ApplyDelta(decimal.NewFromInt(2))
		assert.ErrorIs(t, accounts.Update(ctx, stale), domain.ErrVersionConflict)
	})

	t.Run("failed transaction leaves no trace", func(t *testing.T) {
		before, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)

		err = txManager.WithTransaction(ctx, func(ctx context.Context) error {
			before.ApplyDelta(decimal.NewFromInt(1000))
			if err := accounts.Update(ctx, before); err != nil {
				return err
			}
			return fmt.Errorf("abort")
		})
		require.Error(t, err)

		after, err := accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		assert.True(t, after.Balance.Equal(before.Balance.Sub(decimal.NewFromInt(1000))))
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		again := *acct
		again.AccountNumber = "ACC-IT-2"
		assert.ErrorIs(t, accounts.Create(ctx, &again), domain.ErrAlreadyExists)

		bank := seeder.DefaultBank()
		assert.ErrorIs(t, banks.Create(ctx, &bank), domain.ErrAlreadyExists)
	})

	t.Run("categories available to a bank", func(t *testing.T) {
		owned := &domain.LoanCategory{ID: uuid.New(), Name: "Agriculture", BankID: seeder.DefaultBankID, CreatedAt: time.Now()}
		require.NoError(t, categories.Create(ctx, owned))
		other := &domain.LoanCategory{ID: uuid.New(), Name: "Marine", BankID: "north", CreatedAt: time.Now()}
		require.NoError(t, categories.Create(ctx, other))

		listed, err := categories.List(ctx, seeder.DefaultBankID)
		require.NoError(t, err)
		assert.Len(t, listed, len(seeder.DefaultCategories())+1)
		assert.Equal(t, "Agriculture", listed[0].Name)

		all, err := categories.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, len(seeder.DefaultCategories())+2)
	})

	t.Run("unknown records surface ErrNotFound", func(t *testing.T) {
		_, err := accounts.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = disbursements.GetByApplicationID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = banks.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
