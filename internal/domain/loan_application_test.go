package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplication(status LoanStatus) *LoanApplication {
	return &LoanApplication{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		Amount:       decimal.NewFromInt(12000),
		InterestRate: decimal.NewFromInt(12),
		TenureMonths: 12,
		Status:       status,
	}
}

func TestLoanApplication_Transitions(t *testing.T) {
	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		from       LoanStatus
		event      func(a *LoanApplication) error
		wantErr    bool
		wantStatus LoanStatus
	}{
		{"pending approve", LoanStatusPending, func(a *LoanApplication) error { return a.Approve("u-1", at) }, false, LoanStatusApproved},
		{"pending reject", LoanStatusPending, func(a *LoanApplication) error { return a.Reject("u-1", at, "") }, false, LoanStatusRejected},
		{"pending activate", LoanStatusPending, func(a *LoanApplication) error { return a.Activate() }, true, LoanStatusPending},
		{"pending close", LoanStatusPending, func(a *LoanApplication) error { return a.Close() }, true, LoanStatusPending},
		{"approved approve", LoanStatusApproved, func(a *LoanApplication) error { return a.Approve("u-1", at) }, true, LoanStatusApproved},
		{"approved reject", LoanStatusApproved, func(a *LoanApplication) error { return a.Reject("u-1", at, "") }, true, LoanStatusApproved},
		{"approved activate", LoanStatusApproved, func(a *LoanApplication) error { return a.Activate() }, false, LoanStatusActive},
		{"rejected approve", LoanStatusRejected, func(a *LoanApplication) error { return a.Approve("u-1", at) }, true, LoanStatusRejected},
		{"active activate", LoanStatusActive, func(a *LoanApplication) error { return a.Activate() }, true, LoanStatusActive},
		{"active close", LoanStatusActive, func(a *LoanApplication) error { return a.Close() }, false, LoanStatusClosed},
		{"disbursed close", LoanStatusDisbursed, func(a *LoanApplication) error { return a.Close() }, false, LoanStatusClosed},
		{"closed close", LoanStatusClosed, func(a *LoanApplication) error { return a.Close() }, true, LoanStatusClosed},
		{"transferred approve", LoanStatusTransferred, func(a *LoanApplication) error { return a.Approve("u-1", at) }, true, LoanStatusTransferred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApplication(tt.from)
			err := tt.event(app)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, app.Status)
		})
	}
}

func TestLoanApplication_ApproveRecordsReviewer(t *testing.T) {
	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	app := newApplication(LoanStatusPending)

	require.NoError(t, app.Approve("manager-7", at))

	assert.Equal(t, "manager-7", app.ReviewedBy)
	require.NotNil(t, app.ReviewedAt)
	assert.True(t, app.ReviewedAt.Equal(at))
}

func TestLoanApplication_RejectKeepsRemarks(t *testing.T) {
	app := newApplication(LoanStatusPending)

	require.NoError(t, app.Reject("manager-7", time.Now(), "insufficient income"))

	assert.Equal(t, "insufficient income", app.Remarks)
	assert.Equal(t, "manager-7", app.ReviewedBy)
}

func TestLoanApplication_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *LoanApplication)
		wantErr bool
	}{
		{"valid application", func(a *LoanApplication) {}, false},
		{"zero amount", func(a *LoanApplication) { a.Amount = decimal.Zero }, true},
		{"negative rate", func(a *LoanApplication) { a.InterestRate = decimal.NewFromInt(-1) }, true},
		{"zero rate is allowed", func(a *LoanApplication) { a.InterestRate = decimal.Zero }, false},
		{"zero tenure", func(a *LoanApplication) { a.TenureMonths = 0 }, true},
		{"tenure over the cap", func(a *LoanApplication) { a.TenureMonths = MaxTenureMonths + 1 }, true},
		{"unknown status", func(a *LoanApplication) { a.Status = "archived" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApplication(LoanStatusPending)
			tt.mutate(app)
			err := app.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoanStatus_IsTerminal(t *testing.T) {
	assert.True(t, LoanStatusRejected.IsTerminal())
	assert.True(t, LoanStatusClosed.IsTerminal())
	assert.True(t, LoanStatusTransferred.IsTerminal())
	assert.False(t, LoanStatusPending.IsTerminal())
	assert.False(t, LoanStatusActive.IsTerminal())
}

func TestNewReference(t *testing.T) {
	ref := NewReference("DIS", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, `^DIS-\d{6}-[0-9A-F]{4}$`, ref)
}
