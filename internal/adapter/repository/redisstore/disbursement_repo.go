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

// disbursementRepository implements domain.DisbursementRepository.
// <prefix>:disbursement:by-application:<appID> holds the disbursement id and enforces one per application.
type disbursementRepository struct {
	store *Store
}

// NewDisbursementRepository creates a new disbursement repository
func NewDisbursementRepository(store *Store) domain.DisbursementRepository {
	return &disbursementRepository{store: store}
}

func (r *disbursementRepository) disbursementKey(id string) string {
	return r.store.key("disbursement", id)
}

func (r *disbursementRepository) applicationIndexKey(applicationID uuid.UUID) string {
	return r.store.key("disbursement", "by-application", applicationID.String())
}

// Create stores a new disbursement
func (r *disbursementRepository) Create(ctx context.Context, d *domain.LoanDisbursement) error {
	value, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode disbursement: %w", err)
	}

	id := d.ID.String()
	indexKey := r.applicationIndexKey(d.LoanApplicationID)
	duplicate := fmt.Errorf("application %s: %w", d.LoanApplicationID, domain.ErrAlreadyDisbursed)

	return r.store.write(ctx, func(u *unitOfWork) error {
		if _, staged := u.pending[indexKey]; staged {
			return duplicate
		}
		u.expectAbsent(indexKey, duplicate)
		u.stage(r.disbursementKey(id), value)
		u.stage(indexKey, []byte(id))
		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			pipe.SAdd(ctx, r.store.key("disbursements"), id)
		})
		return nil
	})
}

// GetByID retrieves a disbursement by its ID
func (r *disbursementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanDisbursement, error) {
	var d domain.LoanDisbursement
	if err := r.store.load(ctx, r.disbursementKey(id.String()), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByApplicationID retrieves the disbursement of an application
func (r *disbursementRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*domain.LoanDisbursement, error) {
	id, err := r.store.raw(ctx, r.applicationIndexKey(applicationID))
	if err != nil {
		return nil, err
	}

	var d domain.LoanDisbursement
	if err := r.store.load(ctx, r.disbursementKey(string(id)), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Update rewrites the disbursement if the stored version matches
func (r *disbursementRepository) Update(ctx context.Context, d *domain.LoanDisbursement) error {
	err := r.store.write(ctx, func(u *unitOfWork) error {
		return updateVersioned(u, r.disbursementKey(d.ID.String()), d.Version, func(next int64) ([]byte, error) {
			updated := *d
			updated.Version = next
			return json.Marshal(&updated)
		})
	})
	if err != nil {
		return err
	}

	d.Version++
	return nil
}

// List retrieves all disbursements, oldest first
func (r *disbursementRepository) List(ctx context.Context) ([]*domain.LoanDisbursement, error) {
	ids, err := r.store.client.SMembers(ctx, r.store.key("disbursements")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list disbursements: %w", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.disbursementKey(id)
	}

	disbursements, err := loadAll[domain.LoanDisbursement](ctx, r.store, keys)
	if err != nil {
		return nil, err
	}

	sort.Slice(disbursements, func(i, j int) bool {
		return disbursements[i].DisbursedAt.Before(disbursements[j].DisbursedAt)
	})
	return disbursements, nil
}
