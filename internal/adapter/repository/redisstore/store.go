package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/simaogato/lendflow-backend/internal/config"
	"github.com/simaogato/lendflow-backend/internal/domain"
)

// Store keeps every entity as a JSON document under a prefixed key.
// Secondary lookups use sets and lists maintained in the same MULTI/EXEC as the document.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New creates a store over client. Keys are namespaced by prefix.
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Connect opens a client for cfg and verifies it with PING
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (s *Store) key(parts ...string) string {
	return s.prefix + ":" + strings.Join(parts, ":")
}

// uowKey is the key type for storing the unit of work in context.
type uowKey struct{}

// unitOfWork collects staged writes until the outermost WithTransaction returns.
// pending holds the staged value of every key written so far so reads see them.
type unitOfWork struct {
	pending map[string][]byte
	watched []string
	checks  []func(ctx context.Context, tx *redis.Tx) error
	writes  []func(ctx context.Context, pipe redis.Pipeliner)
}

func newUnitOfWork() *unitOfWork {
	return &unitOfWork{pending: make(map[string][]byte)}
}

func getUnitOfWork(ctx context.Context) *unitOfWork {
	if uow, ok := ctx.Value(uowKey{}).(*unitOfWork); ok {
		return uow
	}
	return nil
}

// stage records a document write
func (u *unitOfWork) stage(key string, value []byte) {
	u.pending[key] = value
	u.writes = append(u.writes, func(ctx context.Context, pipe redis.Pipeliner) {
		pipe.Set(ctx, key, value, 0)
	})
}

func (u *unitOfWork) do(write func(ctx context.Context, pipe redis.Pipeliner)) {
	u.writes = append(u.writes, write)
}

// expectVersion makes the commit fail unless the stored document at key still has version
func (u *unitOfWork) expectVersion(key string, version int64) {
	u.watched = append(u.watched, key)
	u.checks = append(u.checks, func(ctx context.Context, tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%s: %w", key, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		stored, err := versionOf(raw)
		if err != nil {
			return err
		}
		if stored != version {
			return fmt.Errorf("%s: %w", key, domain.ErrVersionConflict)
		}
		return nil
	})
}

// expectAbsent makes the commit fail with conflict if key exists
func (u *unitOfWork) expectAbsent(key string, conflict error) {
	u.watched = append(u.watched, key)
	u.checks = append(u.checks, func(ctx context.Context, tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", key, err)
		}
		if n > 0 {
			return conflict
		}
		return nil
	})
}

// stageNew stages a document that must not exist yet, staged or stored
func stageNew(u *unitOfWork, key string, value []byte) error {
	duplicate := fmt.Errorf("%s: %w", key, domain.ErrAlreadyExists)
	if _, staged := u.pending[key]; staged {
		return duplicate
	}
	u.expectAbsent(key, duplicate)
	u.stage(key, value)
	return nil
}

func versionOf(raw []byte) (int64, error) {
	var doc struct {
		Version int64 `json:"version"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("failed to decode version: %w", err)
	}
	return doc.Version, nil
}

// write stages into the unit of work bound to ctx, or commits right away when there is none
func (s *Store) write(ctx context.Context, stage func(u *unitOfWork) error) error {
	if uow := getUnitOfWork(ctx); uow != nil {
		return stage(uow)
	}

	uow := newUnitOfWork()
	if err := stage(uow); err != nil {
		return err
	}
	return s.commit(ctx, uow)
}

// commit runs the checks under WATCH and applies the writes in one MULTI/EXEC
func (s *Store) commit(ctx context.Context, uow *unitOfWork) error {
	if len(uow.writes) == 0 {
		return nil
	}

	txf := func(tx *redis.Tx) error {
		for _, check := range uow.checks {
			if err := check(ctx, tx); err != nil {
				return err
			}
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, w := range uow.writes {
				w(ctx, pipe)
			}
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txf, uow.watched...)
	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("concurrent modification: %w", domain.ErrVersionConflict)
	}
	return err
}

// load decodes the document at key into dst, preferring a staged value
func (s *Store) load(ctx context.Context, key string, dst any) error {
	raw, err := s.raw(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) raw(ctx context.Context, key string) ([]byte, error) {
	if uow := getUnitOfWork(ctx); uow != nil {
		if staged, ok := uow.pending[key]; ok {
			return staged, nil
		}
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return raw, nil
}

// loadAll decodes the committed documents at keys, skipping ones that vanished
func loadAll[T any](ctx context.Context, s *Store, keys []string) ([]*T, error) {
	if len(keys) == 0 {
		return []*T{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	out := make([]*T, 0, len(values))
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(str), &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", keys[i], err)
		}
		out = append(out, &item)
	}
	return out, nil
}

// updateVersioned stages doc at key guarded by its current version and returns the bumped copy.
// A document already staged in this unit of work is compared locally.
func updateVersioned(u *unitOfWork, key string, version int64, encode func(next int64) ([]byte, error)) error {
	if staged, ok := u.pending[key]; ok {
		current, err := versionOf(staged)
		if err != nil {
			return err
		}
		if current != version {
			return fmt.Errorf("%s: %w", key, domain.ErrVersionConflict)
		}
	} else {
		u.expectVersion(key, version)
	}

	value, err := encode(version + 1)
	if err != nil {
		return err
	}
	u.stage(key, value)
	return nil
}

// TransactionManager implements domain.TransactionManager on top of Store.
type TransactionManager struct {
	store *Store
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(store *Store) *TransactionManager {
	return &TransactionManager{store: store}
}

// WithTransaction stages every repository write made with the context passed to fn
// and commits them together. Nothing is written if fn returns an error.
// A call made with a context that already carries a unit of work joins it.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if getUnitOfWork(ctx) != nil {
		return fn(ctx)
	}

	uow := newUnitOfWork()
	if err := fn(context.WithValue(ctx, uowKey{}, uow)); err != nil {
		return err
	}
	return tm.store.commit(ctx, uow)
}
