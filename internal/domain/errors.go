package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput is returned when amortization or request parameters are out of range
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a lifecycle move is not allowed from the current status
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyDisbursed is returned when a loan application already has a disbursement
	ErrAlreadyDisbursed = errors.New("loan application already disbursed")

	// ErrUnknownAccount is returned when the account linked to an operation cannot be found
	ErrUnknownAccount = errors.New("unknown account")

	// ErrUnknownApplication is returned when a loan application cannot be found
	ErrUnknownApplication = errors.New("unknown loan application")

	// ErrUnknownProduct is returned when a loan product cannot be found
	ErrUnknownProduct = errors.New("unknown loan product")

	// ErrUnknownDisbursement is returned when a loan disbursement cannot be found
	ErrUnknownDisbursement = errors.New("unknown loan disbursement")

	// ErrAlreadyExists is returned when a record with the same identity is already stored
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownBank is returned when a referenced bank does not exist
	ErrUnknownBank = errors.New("unknown bank")

	// ErrUnknownCategory is returned when a referenced loan category does not exist
	ErrUnknownCategory = errors.New("unknown loan category")

	// ErrNotFound is the generic store-level "no such record" error
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict is returned when a compare-and-swap update loses a race
	ErrVersionConflict = errors.New("version conflict")
)

// ResolveNotFound converts a store miss into the caller-facing unknown-entity error.
// Any other error is returned unchanged.
func ResolveNotFound(err, unknown error, id uuid.UUID) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s", unknown, id)
	}
	return err
}
