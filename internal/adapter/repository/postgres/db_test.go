package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/simaogato/lendflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"duplicate key", &pq.Error{Code: "23505"}, true},
		{"wrapped duplicate key", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"foreign key violation", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestNotFound(t *testing.T) {
	id := uuid.New()

	err := notFound("account", id, sql.ErrNoRows)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), id.String())

	err = notFound("account", id, errors.New("connection reset"))
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get account")
}

func TestCreateError(t *testing.T) {
	id := uuid.New()

	err := createError("account", id, fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), id.String())

	err = createError("account", id, errors.New("connection reset"))
	assert.NotErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "failed to create account")
}

func TestGetTx_NoTransaction(t *testing.T) {
	assert.Nil(t, getTx(context.Background()))
}

func TestParseDecimal(t *testing.T) {
	d, err := parseDecimal("1066.19", "amount")
	assert.NoError(t, err)
	assert.Equal(t, "1066.19", d.String())

	_, err = parseDecimal("n/a", "amount")
	assert.ErrorContains(t, err, "failed to parse amount")
}
