package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// Fixed UUIDs for the default loan products
var (
	PRODUCT_PERSONAL  = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	PRODUCT_HOME      = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	PRODUCT_VEHICLE   = uuid.MustParse("00000000-0000-0000-0000-000000000103")
	PRODUCT_EDUCATION = uuid.MustParse("00000000-0000-0000-0000-000000000104")
)

// Fixed UUIDs for the shared loan categories
var (
	CATEGORY_PERSONAL  = uuid.MustParse("00000000-0000-0000-0000-000000000201")
	CATEGORY_HOUSING   = uuid.MustParse("00000000-0000-0000-0000-000000000202")
	CATEGORY_VEHICLE   = uuid.MustParse("00000000-0000-0000-0000-000000000203")
	CATEGORY_EDUCATION = uuid.MustParse("00000000-0000-0000-0000-000000000204")
)

// DefaultBankID owns the seeded catalog
const DefaultBankID = "default"

// DefaultBank returns the bank that owns the seeded products
func DefaultBank() domain.Bank {
	return domain.Bank{
		ID:                 DefaultBankID,
		Name:               "LendFlow Default Bank",
		Email:              "operations@lendflow.local",
		RegistrationNumber: "LF-0001",
		IsActive:           true,
	}
}

// DefaultCategories returns the shared categories the seeded products belong to
func DefaultCategories() []domain.LoanCategory {
	return []domain.LoanCategory{
		{ID: CATEGORY_PERSONAL, Name: "Personal", Description: "Unsecured personal loans"},
		{ID: CATEGORY_HOUSING, Name: "Housing", Description: "Home purchase and construction"},
		{ID: CATEGORY_VEHICLE, Name: "Vehicle", Description: "Car and two-wheeler finance"},
		{ID: CATEGORY_EDUCATION, Name: "Education", Description: "Tuition and study abroad"},
	}
}

// DefaultProducts returns the catalog seeded on an empty store
func DefaultProducts() []domain.LoanProduct {
	return []domain.LoanProduct{
		{
			ID:           PRODUCT_PERSONAL,
			ProductCode:  "PL-12",
			Name:         "Personal Loan",
			CategoryName: "Personal",
			InterestRate: decimal.NewFromInt(12),
			MinAmount:    decimal.NewFromInt(1000),
			MaxAmount:    decimal.NewFromInt(50000),
			TenureMonths: 12,
		},
		{
			ID:           PRODUCT_HOME,
			ProductCode:  "HL-240",
			Name:         "Home Loan",
			CategoryName: "Housing",
			InterestRate: decimal.RequireFromString("8.5"),
			MinAmount:    decimal.NewFromInt(50000),
			MaxAmount:    decimal.NewFromInt(1000000),
			TenureMonths: 240,
		},
		{
			ID:           PRODUCT_VEHICLE,
			ProductCode:  "VL-60",
			Name:         "Vehicle Loan",
			CategoryName: "Vehicle",
			InterestRate: decimal.RequireFromString("9.75"),
			MinAmount:    decimal.NewFromInt(5000),
			MaxAmount:    decimal.NewFromInt(150000),
			TenureMonths: 60,
		},
		{
			ID:           PRODUCT_EDUCATION,
			ProductCode:  "EL-84",
			Name:         "Education Loan",
			CategoryName: "Education",
			InterestRate: decimal.Zero,
			MinAmount:    decimal.NewFromInt(2000),
			MaxAmount:    decimal.NewFromInt(80000),
			TenureMonths: 84,
		},
	}
}

// CatalogSeeder handles seeding of the default bank, categories and loan products
type CatalogSeeder struct {
	banks      domain.BankRepository
	categories domain.LoanCategoryRepository
	repo       domain.LoanProductRepository
}

// NewCatalogSeeder creates a new CatalogSeeder instance
func NewCatalogSeeder(banks domain.BankRepository, categories domain.LoanCategoryRepository, repo domain.LoanProductRepository) *CatalogSeeder {
	return &CatalogSeeder{
		banks:      banks,
		categories: categories,
		repo:       repo,
	}
}

// Seed ensures the default bank, categories and products exist in the store
// Missing records are created in that order. Existing ones are left untouched.
func (s *CatalogSeeder) Seed(ctx context.Context) error {
	now := time.Now()
	if err := s.seedBank(ctx, now); err != nil {
		return err
	}
	if err := s.seedCategories(ctx, now); err != nil {
		return err
	}
	return s.seedProducts(ctx, now)
}

func (s *CatalogSeeder) seedBank(ctx context.Context, now time.Time) error {
	_, err := s.banks.GetByID(ctx, DefaultBankID)
	if err == nil {
		return nil
	}
	if !domain.IsNotFound(err) {
		return fmt.Errorf("failed to look up bank %s: %w", DefaultBankID, err)
	}

	bank := DefaultBank()
	bank.CreatedAt = now
	if err := s.banks.Create(ctx, &bank); err != nil {
		return fmt.Errorf("failed to seed bank %s: %w", DefaultBankID, err)
	}
	return nil
}

func (s *CatalogSeeder) seedCategories(ctx context.Context, now time.Time) error {
	for _, def := range DefaultCategories() {
		_, err := s.categories.GetByID(ctx, def.ID)
		if err == nil {
			continue
		}
		if !domain.IsNotFound(err) {
			return fmt.Errorf("failed to look up category %s: %w", def.Name, err)
		}

		category := def
		category.CreatedAt = now
		if err := s.categories.Create(ctx, &category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", def.Name, err)
		}
	}
	return nil
}

func (s *CatalogSeeder) seedProducts(ctx context.Context, now time.Time) error {
	for _, def := range DefaultProducts() {
		_, err := s.repo.GetByID(ctx, def.ID)
		if err == nil {
			continue
		}
		if !domain.IsNotFound(err) {
			return fmt.Errorf("failed to look up product %s: %w", def.ProductCode, err)
		}

		product := def
		product.BankID = DefaultBankID
		product.CreatedAt = now
		if err := product.Validate(); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", def.ProductCode, err)
		}
	}

	return nil
}
