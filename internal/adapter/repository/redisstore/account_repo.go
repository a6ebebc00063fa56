package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	store *Store
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(store *Store) domain.AccountRepository {
	return &accountRepository{store: store}
}

func (r *accountRepository) accountKey(id uuid.UUID) string {
	return r.store.key("account", id.String())
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	if err := r.store.load(ctx, r.accountKey(id), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	value, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode account: %w", err)
	}

	return r.store.write(ctx, func(u *unitOfWork) error {
		return stageNew(u, r.accountKey(account.ID), value)
	})
}

// Update writes the account if the stored version matches
func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	err := r.store.write(ctx, func(u *unitOfWork) error {
		return updateVersioned(u, r.accountKey(account.ID), account.Version, func(next int64) ([]byte, error) {
			updated := *account
			updated.Version = next
			return json.Marshal(&updated)
		})
	})
	if err != nil {
		return err
	}

	account.Version++
	return nil
}
