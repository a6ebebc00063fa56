package seeder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/simaogato/lendflow-backend/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type seederMocks struct {
	banks      *mocks.BankRepository
	categories *mocks.LoanCategoryRepository
	products   *mocks.LoanProductRepository
}

func newSeeder() (*CatalogSeeder, *seederMocks) {
	m := &seederMocks{
		banks:      new(mocks.BankRepository),
		categories: new(mocks.LoanCategoryRepository),
		products:   new(mocks.LoanProductRepository),
	}
	return NewCatalogSeeder(m.banks, m.categories, m.products), m
}

// existingReferenceData makes the bank and every category already present
func (m *seederMocks) existingReferenceData(ctx context.Context) {
	bank := DefaultBank()
	m.banks.On("GetByID", ctx, DefaultBankID).Return(&bank, nil)
	for _, c := range DefaultCategories() {
		existing := c
		m.categories.On("GetByID", ctx, c.ID).Return(&existing, nil)
	}
}

func TestCatalogSeeder_Seed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	seeder, m := newSeeder()

	m.banks.On("GetByID", ctx, DefaultBankID).Return(nil, fmt.Errorf("bank: %w", domain.ErrNotFound))
	m.banks.On("Create", ctx, mock.MatchedBy(func(b *domain.Bank) bool {
		return b.ID == DefaultBankID && b.IsActive && !b.CreatedAt.IsZero()
	})).Return(nil).Once()

	for _, c := range DefaultCategories() {
		m.categories.On("GetByID", ctx, c.ID).Return(nil, fmt.Errorf("category: %w", domain.ErrNotFound))
		want := c
		m.categories.On("Create", ctx, mock.MatchedBy(func(category *domain.LoanCategory) bool {
			return category.ID == want.ID && category.Name == want.Name && category.BankID == ""
		})).Return(nil).Once()
	}

	for _, p := range DefaultProducts() {
		m.products.On("GetByID", ctx, p.ID).Return(nil, fmt.Errorf("product: %w", domain.ErrNotFound))

		want := p
		m.products.On("Create", ctx, mock.MatchedBy(func(product *domain.LoanProduct) bool {
			return product.ID == want.ID &&
				product.ProductCode == want.ProductCode &&
				product.BankID == DefaultBankID &&
				!product.CreatedAt.IsZero()
		})).Return(nil).Once()
	}

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	m.banks.AssertExpectations(t)
	m.categories.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.products.AssertNumberOfCalls(t, "Create", len(DefaultProducts()))
}

func TestCatalogSeeder_Seed_EverythingExists(t *testing.T) {
	ctx := context.Background()
	seeder, m := newSeeder()
	m.existingReferenceData(ctx)

	for _, p := range DefaultProducts() {
		existing := p
		m.products.On("GetByID", ctx, p.ID).Return(&existing, nil)
	}

	err := seeder.Seed(ctx)

	assert.NoError(t, err)
	m.banks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogSeeder_Seed_BankLookupFailure(t *testing.T) {
	ctx := context.Background()
	seeder, m := newSeeder()
	m.banks.On("GetByID", ctx, DefaultBankID).Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx)

	assert.ErrorContains(t, err, "connection refused")
	m.categories.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogSeeder_Seed_ProductLookupFailure(t *testing.T) {
	ctx := context.Background()
	seeder, m := newSeeder()
	m.existingReferenceData(ctx)
	m.products.On("GetByID", ctx, PRODUCT_PERSONAL).Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx)

	assert.ErrorContains(t, err, "connection refused")
	m.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogSeeder_Seed_CreateFailure(t *testing.T) {
	ctx := context.Background()
	seeder, m := newSeeder()
	m.existingReferenceData(ctx)
	m.products.On("GetByID", ctx, PRODUCT_PERSONAL).Return(nil, fmt.Errorf("product: %w", domain.ErrNotFound))
	m.products.On("Create", ctx, mock.Anything).Return(errors.New("read-only replica"))

	err := seeder.Seed(ctx)

	assert.ErrorContains(t, err, "PL-12")
}

func TestDefaultProducts_AreValid(t *testing.T) {
	categories := map[string]bool{}
	for _, c := range DefaultCategories() {
		assert.NoError(t, c.Validate())
		categories[c.Name] = true
	}
	bank := DefaultBank()
	assert.NoError(t, bank.Validate())

	for _, p := range DefaultProducts() {
		product := p
		product.BankID = DefaultBankID
		assert.NoError(t, product.Validate(), product.ProductCode)
		assert.True(t, categories[product.CategoryName], "%s has no seeded category", product.ProductCode)
	}
}
