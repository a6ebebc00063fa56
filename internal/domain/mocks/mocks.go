// Package mocks provides testify mocks of the domain ports for use case tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a mock implementation of domain.AccountRepository
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// BankRepository is a mock implementation of domain.BankRepository
type BankRepository struct {
	mock.Mock
}

func (m *BankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *BankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *BankRepository) List(ctx context.Context) ([]*domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Bank), args.Error(1)
}

// LoanCategoryRepository is a mock implementation of domain.LoanCategoryRepository
type LoanCategoryRepository struct {
	mock.Mock
}

func (m *LoanCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanCategory), args.Error(1)
}

func (m *LoanCategoryRepository) Create(ctx context.Context, category *domain.LoanCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *LoanCategoryRepository) List(ctx context.Context, bankID string) ([]*domain.LoanCategory, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanCategory), args.Error(1)
}

// LoanProductRepository is a mock implementation of domain.LoanProductRepository
type LoanProductRepository struct {
	mock.Mock
}

func (m *LoanProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanProduct), args.Error(1)
}

func (m *LoanProductRepository) Create(ctx context.Context, product *domain.LoanProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *LoanProductRepository) List(ctx context.Context, bankID string) ([]*domain.LoanProduct, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanProduct), args.Error(1)
}

// LoanApplicationRepository is a mock implementation of domain.LoanApplicationRepository
type LoanApplicationRepository struct {
	mock.Mock
}

func (m *LoanApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplication), args.Error(1)
}

func (m *LoanApplicationRepository) Create(ctx context.Context, app *domain.LoanApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *LoanApplicationRepository) Update(ctx context.Context, app *domain.LoanApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *LoanApplicationRepository) List(ctx context.Context, status domain.LoanStatus) ([]*domain.LoanApplication, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanApplication), args.Error(1)
}

// DisbursementRepository is a mock implementation of domain.DisbursementRepository
type DisbursementRepository struct {
	mock.Mock
}

func (m *DisbursementRepository) Create(ctx context.Context, disbursement *domain.LoanDisbursement) error {
	args := m.Called(ctx, disbursement)
	return args.Error(0)
}

func (m *DisbursementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanDisbursement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanDisbursement), args.Error(1)
}

func (m *DisbursementRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*domain.LoanDisbursement, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanDisbursement), args.Error(1)
}

func (m *DisbursementRepository) Update(ctx context.Context, disbursement *domain.LoanDisbursement) error {
	args := m.Called(ctx, disbursement)
	return args.Error(0)
}

func (m *DisbursementRepository) List(ctx context.Context) ([]*domain.LoanDisbursement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanDisbursement), args.Error(1)
}

// AdjustmentRepository is a mock implementation of domain.AdjustmentRepository
type AdjustmentRepository struct {
	mock.Mock
}

func (m *AdjustmentRepository) Create(ctx context.Context, adjustment *domain.LoanAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *AdjustmentRepository) ListByApplication(ctx context.Context, applicationID *uuid.UUID) ([]*domain.LoanAdjustment, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanAdjustment), args.Error(1)
}

// TransactionManager is a mock implementation of domain.TransactionManager.
// Unless the expectation returns an error, fn runs with the caller's context.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// DisbursementNotifier is a mock implementation of domain.DisbursementNotifier
type DisbursementNotifier struct {
	mock.Mock
}

func (m *DisbursementNotifier) NotifyDisbursement(ctx context.Context, notice domain.DisbursementNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}
