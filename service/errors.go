package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is, which is what the HTTP layer maps to a status code.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrConflict          = errors.New("conflict")
	ErrTransactionFailed = errors.New("transaction failed")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrUserNotFound           = newKindError(ErrNotFound, "user not found")
	ErrAccountNotFound        = newKindError(ErrNotFound, "account not found")
	ErrTransactionNotFound    = newKindError(ErrNotFound, "transaction not found")
	ErrTransactionsNotFound   = newKindError(ErrNotFound, "no transactions found to delete")
	ErrNoTransactionIDs       = newKindError(ErrInvalidArgument, "no transaction IDs provided")
	ErrInvalidAmount          = newKindError(ErrInvalidArgument, "amount must be greater than zero")
	ErrInvalidBalance         = newKindError(ErrInvalidArgument, "invalid balance amount")
	ErrTooPrecise             = newKindError(ErrInvalidArgument, "amounts may have at most 2 decimal places")
	ErrMissingInterval        = newKindError(ErrInvalidArgument, "recurring transactions need a recurring interval")
	ErrInvalidRange           = newKindError(ErrInvalidArgument, "unknown date range")
	ErrAccountHasTransactions = newKindError(ErrConflict, "cannot delete account with existing transactions, delete its transactions first")
)

// txFailure wraps a unit-of-work failure. Domain errors raised inside the unit
// pass through unchanged.
func txFailure(err error) error {
	var kindErr *kindError
	if errors.As(err, &kindErr) {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: concurrent update, please retry: %w", ErrTransactionFailed, err)
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: referenced row disappeared: %w", ErrTransactionFailed, err)
	}
	return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
}
