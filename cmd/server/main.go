package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/lendflow-backend/internal/adapter/grpc"
	lendflowv1 "github.com/simaogato/lendflow-backend/internal/adapter/grpc/lendflowv1"
	"github.com/simaogato/lendflow-backend/internal/adapter/notification"
	"github.com/simaogato/lendflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/lendflow-backend/internal/adapter/repository/redisstore"
	"github.com/simaogato/lendflow-backend/internal/config"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/logger"
	"github.com/simaogato/lendflow-backend/internal/usecase/account"
	"github.com/simaogato/lendflow-backend/internal/usecase/adjustment"
	"github.com/simaogato/lendflow-backend/internal/usecase/catalog"
	"github.com/simaogato/lendflow-backend/internal/usecase/lifecycle"
	"github.com/simaogato/lendflow-backend/internal/usecase/portfolio"
	"github.com/simaogato/lendflow-backend/internal/usecase/repayment"
	"github.com/simaogato/lendflow-backend/internal/usecase/seeder"
)

// startupTimeout bounds connecting, migrating and seeding
const startupTimeout = 30 * time.Second

// repositories is the set of store adapters the services are built from
type repositories struct {
	banks         domain.BankRepository
	categories    domain.LoanCategoryRepository
	accounts      domain.AccountRepository
	products      domain.LoanProductRepository
	applications  domain.LoanApplicationRepository
	disbursements domain.DisbursementRepository
	adjustments   domain.AdjustmentRepository
	txManager     domain.TransactionManager
	close         func() error
}

func main() {
	// 1. Load configuration and logger
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// 2. Open the configured store
	repos, err := openStore(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer repos.close()

	if cfg.SeedCatalog {
		if err := seeder.NewCatalogSeeder(repos.banks, repos.categories, repos.products).Seed(ctx); err != nil {
			zlog.Fatal("Failed to seed catalog", zap.Error(err))
		}
		zlog.Info("Default bank, loan categories and products seeded")
	}

	// 3. Choose how borrowers are notified
	var notifier domain.DisbursementNotifier = notification.NewLogNotifier(zlog)
	if cfg.RabbitMQ.Enabled {
		publisher, err := notification.NewRabbitMQPublisher(cfg.RabbitMQ, zlog)
		if err != nil {
			zlog.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
		notifier = publisher
	}

	// 4. Initialize Services (Use Cases)
	loanService := lifecycle.NewLoanService(repos.accounts, repos.products, repos.applications,
		repos.disbursements, repos.txManager, notifier, zlog)
	loanService.NotifyTimeout = cfg.NotifyTimeout

	server := grpcadapter.NewServer(
		account.NewAccountService(repos.accounts, repos.banks),
		catalog.NewCatalogService(repos.banks, repos.categories, repos.products),
		loanService,
		adjustment.NewAdjustmentService(repos.accounts, repos.applications, repos.adjustments, repos.txManager, zlog),
		repayment.NewRepaymentService(repos.applications, repos.disbursements, repos.txManager, zlog),
		portfolio.NewPortfolioService(repos.applications, repos.disbursements, repos.adjustments),
	)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.AuthInterceptor(cfg.APIToken),
			grpcadapter.ActorInterceptor(grpcadapter.DefaultPolicy()),
		),
	)
	lendflowv1.RegisterLendFlowServiceServer(grpcServer, server)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		zlog.Fatal("Failed to listen", zap.String("addr", cfg.ListenAddr()), zap.Error(err))
	}

	go func() {
		zlog.Info("gRPC server listening", zap.String("addr", cfg.ListenAddr()), zap.String("store", cfg.StoreBackend))
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatal("Failed to serve gRPC server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, zlog)
	loanService.WaitNotices()
}

// openStore connects the backend named by cfg.StoreBackend
func openStore(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (*repositories, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		client, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		store := redisstore.New(client, cfg.Redis.KeyPrefix)
		zlog.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))

		return &repositories{
			banks:         redisstore.NewBankRepository(store),
			categories:    redisstore.NewLoanCategoryRepository(store),
			accounts:      redisstore.NewAccountRepository(store),
			products:      redisstore.NewLoanProductRepository(store),
			applications:  redisstore.NewLoanApplicationRepository(store),
			disbursements: redisstore.NewDisbursementRepository(store),
			adjustments:   redisstore.NewAdjustmentRepository(store),
			txManager:     redisstore.NewTransactionManager(store),
			close:         client.Close,
		}, nil

	case config.StoreBackendPostgres:
		db, err := postgres.NewDB(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		zlog.Info("Connected to PostgreSQL", zap.String("host", cfg.Postgres.Host))

		return &repositories{
			banks:         postgres.NewBankRepository(db),
			categories:    postgres.NewLoanCategoryRepository(db),
			accounts:      postgres.NewAccountRepository(db),
			products:      postgres.NewLoanProductRepository(db),
			applications:  postgres.NewLoanApplicationRepository(db),
			disbursements: postgres.NewDisbursementRepository(db),
			adjustments:   postgres.NewAdjustmentRepository(db),
			txManager:     postgres.NewTransactionManager(db),
			close:         db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, zlog *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	zlog.Info("Shutting down gracefully", zap.String("signal", sig.String()))

	grpcServer.GracefulStop()
	zlog.Info("gRPC server stopped")
}
