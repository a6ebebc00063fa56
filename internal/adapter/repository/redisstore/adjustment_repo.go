package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// adjustmentRepository implements domain.AdjustmentRepository.
// Adjustments are append-only; RPUSH keeps the lists in the order they were applied.
type adjustmentRepository struct {
	store *Store
}

// NewAdjustmentRepository creates a new adjustment repository
func NewAdjustmentRepository(store *Store) domain.AdjustmentRepository {
	return &adjustmentRepository{store: store}
}

func (r *adjustmentRepository) adjustmentKey(id string) string {
	return r.store.key("adjustment", id)
}

func (r *adjustmentRepository) listKey(applicationID *uuid.UUID) string {
	if applicationID == nil {
		return r.store.key("adjustments")
	}
	return r.store.key("adjustments", "application", applicationID.String())
}

// Create records an adjustment
func (r *adjustmentRepository) Create(ctx context.Context, adjustment *domain.LoanAdjustment) error {
	value, err := json.Marshal(adjustment)
	if err != nil {
		return fmt.Errorf("failed to encode adjustment: %w", err)
	}

	id := adjustment.ID.String()
	appID := adjustment.LoanApplicationID
	return r.store.write(ctx, func(u *unitOfWork) error {
		if err := stageNew(u, r.adjustmentKey(id), value); err != nil {
			return err
		}
		u.do(func(ctx context.Context, pipe redis.Pipeliner) {
			pipe.RPush(ctx, r.listKey(nil), id)
			pipe.RPush(ctx, r.listKey(&appID), id)
		})
		return nil
	})
}

// ListByApplication retrieves adjustments in the order they were applied
func (r *adjustmentRepository) ListByApplication(ctx context.Context, applicationID *uuid.UUID) ([]*domain.LoanAdjustment, error) {
	ids, err := r.store.client.LRange(ctx, r.listKey(applicationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.adjustmentKey(id)
	}
	return loadAll[domain.LoanAdjustment](ctx, r.store, keys)
}
