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

// loanApplicationRepository implements domain.LoanApplicationRepository.
// Every application id lives in <prefix>:applications and in exactly one status set.
type loanApplicationRepository struct {
	store *Store
}

// NewLoanApplicationRepository creates a new loan application repository
func NewLoanApplicationRepository(store *Store) domain.LoanApplicationRepository {
	return &loanApplicationRepository{store: store}
}

func (r *loanApplicationRepository) applicationKey(id string) string {
	return r.store.key("application", id)
}

func (r *loanApplicationRepository) indexKey(status domain.LoanStatus) string {
	if status == "" {
		return r.store.key("applications")
	}
	return r.store.key("applications", "status", string(status))
}

// GetByID retrieves a loan application by its ID
func (r *loanApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanApplication, error) {
	var app domain.LoanApplication
	if err := r.store.load(ctx, r.applicationKey(id.String()), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Create creates a new loan application
func (r *loanApplicationRepository) Create(ctx context.Context, app *domain.LoanApplication) error {
	value, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to encode loan application: %w", err)
	}

	id := app.ID.String()
	return r.store.write(ctx, func(u *unitOfWork) error {
		if err := stageNew(u, r.applicationKey(id), value); err != nil {
			return err
		}
		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			pipe.SAdd(ctx, r.indexKey(""), id)
			pipe.SAdd(ctx, r.indexKey(app.Status), id)
		})
		return nil
	})
}

// Update writes the application if the stored version matches and moves it to its status set
func (r *loanApplicationRepository) Update(ctx context.Context, app *domain.LoanApplication) error {
	id := app.ID.String()
	status := app.Status

	err := r.store.write(ctx, func(u *unitOfWork) error {
		err := updateVersioned(u, r.applicationKey(id), app.Version, func(next int64) ([]byte, error) {
			updated := *app
			updated.Version = next
			return json.Marshal(&updated)
		})
		if err != nil {
			return err
		}

		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			for _, s := range domain.AllLoanStatuses {
				if s != status {
					pipe.SRem(ctx, r.indexKey(s), id)
				}
			}
			pipe.SAdd(ctx, r.indexKey(status), id)
		})
		return nil
	})
	if err != nil {
		return err
	}

	app.Version++
	return nil
}

// List retrieves applications oldest first, optionally filtered by status
func (r *loanApplicationRepository) List(ctx context.Context, status domain.LoanStatus) ([]*domain.LoanApplication, error) {
	ids, err := r.store.client.SMembers(ctx, r.indexKey(status)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list loan applications: %w", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.applicationKey(id)
	}

	apps, err := loadAll[domain.LoanApplication](ctx, r.store, keys)
	if err != nil {
		return nil, err
	}

	sort.Slice(apps, func(i, j int) bool {
		if apps[i].AppliedAt.Equal(apps[j].AppliedAt) {
			return apps[i].ApplicationNumber < apps[j].ApplicationNumber
		}
		return apps[i].AppliedAt.Before(apps[j].AppliedAt)
	})
	return apps, nil
}
