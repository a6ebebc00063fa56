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

// loanProductRepository implements domain.LoanProductRepository.
// Products are indexed in <prefix>:products and per bank in <prefix>:products:bank:<bankID>.
type loanProductRepository struct {
	store *Store
}

// NewLoanProductRepository creates a new loan product repository
func NewLoanProductRepository(store *Store) domain.LoanProductRepository {
	return &loanProductRepository{store: store}
}

func (r *loanProductRepository) productKey(id string) string {
	return r.store.key("product", id)
}

func (r *loanProductRepository) indexKey(bankID string) string {
	if bankID == "" {
		return r.store.key("products")
	}
	return r.store.key("products", "bank", bankID)
}

// GetByID retrieves a loan product by its ID
func (r *loanProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanProduct, error) {
	var product domain.LoanProduct
	if err := r.store.load(ctx, r.productKey(id.String()), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create creates a new loan product
func (r *loanProductRepository) Create(ctx context.Context, product *domain.LoanProduct) error {
	value, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode loan product: %w", err)
	}

	id := product.ID.String()
	return r.store.write(ctx, func(u *unitOfWork) error {
		if err := stageNew(u, r.productKey(id), value); err != nil {
			return err
		}
		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			pipe.SAdd(ctx, r.indexKey(""), id)
			pipe.SAdd(ctx, r.indexKey(product.BankID), id)
		})
		return nil
	})
}

// List retrieves products ordered by product code, optionally filtered by bank
func (r *loanProductRepository) List(ctx context.Context, bankID string) ([]*domain.LoanProduct, error) {
	ids, err := r.store.client.SMembers(ctx, r.indexKey(bankID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list loan products: %w", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.productKey(id)
	}

	products, err := loadAll[domain.LoanProduct](ctx, r.store, keys)
	if err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductCode < products[j].ProductCode
	})
	return products, nil
}
