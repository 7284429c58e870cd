package types

import (
	"errors"
	"fmt"
)

// Error categories. Every specific sentinel below wraps one of these, so
// callers classify failures with errors.Is(err, ErrValidation) or
// errors.Is(err, ErrNotFound).
var (
	// ErrValidation marks rejected input: bad shape, range, or uniqueness.
	// The operation aborts with no mutation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to an entity id that does not resolve.
	ErrNotFound = errors.New("entity not found")

	// ErrCorruptBackup marks a backup document that failed parsing or
	// structural validation. Restore aborts; live data is untouched.
	ErrCorruptBackup = fmt.Errorf("%w: corrupt backup document", ErrValidation)
)

// Validation errors.
var (
	ErrBlankName         = fmt.Errorf("%w: name must not be blank", ErrValidation)
	ErrDuplicateName     = fmt.Errorf("%w: name already in use", ErrValidation)
	ErrInvalidPrice      = fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	ErrInvalidStock      = fmt.Errorf("%w: stock quantity must not be negative", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrInsufficientStock = fmt.Errorf("%w: quantity exceeds available stock", ErrValidation)
	ErrEmptySale         = fmt.Errorf("%w: sale must contain at least one item", ErrValidation)
	ErrInvalidInterval   = fmt.Errorf("%w: backup interval must be positive", ErrValidation)
	ErrInvalidRetention  = fmt.Errorf("%w: backup retention must be positive", ErrValidation)
)

// Not-found errors.
var (
	ErrProductNotFound     = fmt.Errorf("%w: product", ErrNotFound)
	ErrSaleNotFound        = fmt.Errorf("%w: sale", ErrNotFound)
	ErrExpenseTypeNotFound = fmt.Errorf("%w: expense type", ErrNotFound)
	ErrExpenseNotFound     = fmt.Errorf("%w: expense", ErrNotFound)
	ErrBackupNotFound      = fmt.Errorf("%w: emergency backup", ErrNotFound)
)

// Store configuration errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrStoreClosed    = errors.New("store is closed")
)
