package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/usecase/validation"
)

// CreateBankInput represents the input for registering a bank
type CreateBankInput struct {
	ID                 string `validate:"required"`
	Name               string `validate:"required"`
	Email              string `validate:"required,email"`
	Address            string
	Phone              string
	RegistrationNumber string `validate:"required"`
	IsActive           bool
}

// CreateLoanCategoryInput represents the input for adding a loan category.
// An empty BankID makes the category available to every bank.
type CreateLoanCategoryInput struct {
	Name        string `validate:"required"`
	Description string
	BankID      string
}

// CreateLoanProductInput represents the input for adding a loan product
type CreateLoanProductInput struct {
	ProductCode  string `validate:"required"`
	Name         string `validate:"required"`
	CategoryName string
	BankID       string `validate:"required"`
	InterestRate decimal.Decimal
	MinAmount    decimal.Decimal
	MaxAmount    decimal.Decimal
	TenureMonths int `validate:"gt=0,lte=600"`
}

// CatalogService handles banks, loan categories and the loan product catalog
type CatalogService struct {
	BankRepo     domain.BankRepository
	CategoryRepo domain.LoanCategoryRepository
	ProductRepo  domain.LoanProductRepository
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(bankRepo domain.BankRepository, categoryRepo domain.LoanCategoryRepository, productRepo domain.LoanProductRepository) *CatalogService {
	return &CatalogService{
		BankRepo:     bankRepo,
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
	}
}

// CreateBank registers a bank under its code
func (s *CatalogService) CreateBank(ctx context.Context, input CreateBankInput) (*domain.Bank, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	bank := &domain.Bank{
		ID:                 strings.ToLower(strings.TrimSpace(input.ID)),
		Name:               input.Name,
		Email:              input.Email,
		Address:            input.Address,
		Phone:              input.Phone,
		RegistrationNumber: input.RegistrationNumber,
		IsActive:           input.IsActive,
		CreatedAt:          time.Now(),
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	if err := s.BankRepo.Create(ctx, bank); err != nil {
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}
	return bank, nil
}

// ListBanks returns every bank ordered by name
func (s *CatalogService) ListBanks(ctx context.Context) ([]*domain.Bank, error) {
	banks, err := s.BankRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}

// CreateLoanCategory adds a category, shared or owned by one bank
// Logic:
//   - An owning bank must exist and be active
//   - The name must not clash with a category already available to that bank
func (s *CatalogService) CreateLoanCategory(ctx context.Context, input CreateLoanCategoryInput) (*domain.LoanCategory, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.BankID != "" {
		if _, err := domain.LookupActiveBank(ctx, s.BankRepo, input.BankID); err != nil {
			return nil, err
		}
	}

	existing, err := s.CategoryRepo.List(ctx, input.BankID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan categories: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, input.Name) {
			return nil, fmt.Errorf("loan category %q: %w", input.Name, domain.ErrAlreadyExists)
		}
	}

	category := &domain.LoanCategory{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		BankID:      input.BankID,
		CreatedAt:   time.Now(),
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create loan category: %w", err)
	}
	return category, nil
}

// ListLoanCategories returns the categories available to bankID, or all of them when it is empty
func (s *CatalogService) ListLoanCategories(ctx context.Context, bankID string) ([]*domain.LoanCategory, error) {
	categories, err := s.CategoryRepo.List(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan categories: %w", err)
	}
	return categories, nil
}

// CreateLoanProduct adds a product to the catalog
// Logic:
//  1. The owning bank must exist and be active
//  2. A non-empty CategoryName must match a category available to that bank
//     and is stored with the category's spelling
func (s *CatalogService) CreateLoanProduct(ctx context.Context, input CreateLoanProductInput) (*domain.LoanProduct, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	product := &domain.LoanProduct{
		ID:           uuid.New(),
		ProductCode:  input.ProductCode,
		Name:         input.Name,
		CategoryName: input.CategoryName,
		BankID:       input.BankID,
		InterestRate: input.InterestRate,
		MinAmount:    input.MinAmount,
		MaxAmount:    input.MaxAmount,
		TenureMonths: input.TenureMonths,
		CreatedAt:    time.Now(),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if _, err := domain.LookupActiveBank(ctx, s.BankRepo, input.BankID); err != nil {
		return nil, err
	}
	if input.CategoryName != "" {
		category, err := s.findCategory(ctx, input.BankID, input.CategoryName)
		if err != nil {
			return nil, err
		}
		product.CategoryName = category.Name
	}

	if err := s.ProductRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create loan product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) findCategory(ctx context.Context, bankID, name string) (*domain.LoanCategory, error) {
	categories, err := s.CategoryRepo.List(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan categories: %w", err)
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q for bank %s", domain.ErrUnknownCategory, name, bankID)
}

// ListLoanProducts returns the catalog, optionally narrowed to one bank
func (s *CatalogService) ListLoanProducts(ctx context.Context, bankID string) ([]*domain.LoanProduct, error) {
	products, err := s.ProductRepo.List(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan products: %w", err)
	}
	return products, nil
}
