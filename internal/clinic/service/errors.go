package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

var (
	ErrValidation         = errors.New("validation_failed")
	ErrSlotConflict       = errors.New("slot_taken")
	ErrDuplicateEmail     = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidTransition  = errors.New("invalid_transition")
	ErrStore              = errors.New("store_failure")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

var sentinels = []error{
	ErrValidation, ErrSlotConflict, ErrDuplicateEmail, ErrInvalidCredentials,
	ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrInvalidTransition, ErrStore,
}

func classified(err error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}

// withTx runs fn in a transaction. Errors from beginning or committing the
// transaction come back as ErrStore; service errors from fn pass through.
func withTx(ctx context.Context, st store.Store, op string, fn func(tx store.Tx) error) error {
	err := st.WithTx(ctx, fn)
	if err == nil || classified(err) {
		return err
	}
	return storeErr(op, err)
}
