package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// bankRepository implements domain.BankRepository.
// Bank codes are indexed in <prefix>:banks.
type bankRepository struct {
	store *Store
}

// NewBankRepository creates a new bank repository
func NewBankRepository(store *Store) domain.BankRepository {
	return &bankRepository{store: store}
}

func (r *bankRepository) bankKey(id string) string {
	return r.store.key("bank", id)
}

// GetByID retrieves a bank by its code
func (r *bankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	var bank domain.Bank
	if err := r.store.load(ctx, r.bankKey(id), &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// Create creates a new bank
func (r *bankRepository) Create(ctx context.Context, bank *domain.Bank) error {
	value, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("failed to encode bank: %w", err)
	}

	return r.store.write(ctx, func(u *unitOfWork) error {
		if err := stageNew(u, r.bankKey(bank.ID), value); err != nil {
			return err
		}
		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			pipe.SAdd(ctx, r.store.key("banks"), bank.ID)
		})
		return nil
	})
}

// List retrieves all banks ordered by name
func (r *bankRepository) List(ctx context.Context) ([]*domain.Bank, error) {
	ids, err := r.store.client.SMembers(ctx, r.store.key("banks")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.bankKey(id)
	}

	banks, err := loadAll[domain.Bank](ctx, r.store, keys)
	if err != nil {
		return nil, err
	}

	sort.Slice(banks, func(i, j int) bool {
		return banks[i].Name < banks[j].Name
	})
	return banks, nil
}

// loanCategoryRepository implements domain.LoanCategoryRepository.
// Category IDs are indexed in <prefix>:categories.
type loanCategoryRepository struct {
	store *Store
}

// NewLoanCategoryRepository creates a new loan category repository
func NewLoanCategoryRepository(store *Store) domain.LoanCategoryRepository {
	return &loanCategoryRepository{store: store}
}

func (r *loanCategoryRepository) categoryKey(id string) string {
	return r.store.key("category", id)
}

// GetByID retrieves a loan category by its ID
func (r *loanCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanCategory, error) {
	var category domain.LoanCategory
	if err := r.store.load(ctx, r.categoryKey(id.String()), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new loan category
func (r *loanCategoryRepository) Create(ctx context.Context, category *domain.LoanCategory) error {
	value, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("failed to encode loan category: %w", err)
	}

	id := category.ID.String()
	return r.store.write(ctx, func(u *unitOfWork) error {
		if err := stageNew(u, r.categoryKey(id), value); err != nil {
			return err
		}
		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			pipe.SAdd(ctx, r.store.key("categories"), id)
		})
		return nil
	})
}

// List retrieves categories ordered by name, narrowed to those available to bankID when it is set
func (r *loanCategoryRepository) List(ctx context.Context, bankID string) ([]*domain.LoanCategory, error) {
	ids, err := r.store.client.SMembers(ctx, r.store.key("categories")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list loan categories: %w", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.categoryKey(id)
	}

	all, err := loadAll[domain.LoanCategory](ctx, r.store, keys)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.LoanCategory, 0, len(all))
	for _, c := range all {
		if bankID == "" || c.AvailableTo(bankID) {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}
