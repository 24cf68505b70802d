package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingField indicates that a required posting field was absent or empty.
var ErrMissingField = errors.New("required field missing")

// ErrInvalidAmount indicates that a posting amount was not a positive finite number.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// ErrIntegrityCheck indicates that the balance sheet check value came out nonzero,
// meaning the ledger no longer satisfies the accounting equation.
var ErrIntegrityCheck = errors.New("ledger integrity check failed")

// ErrNotInitialized indicates that the ledger has no firm profile yet and
// the operation requires a completed setup.
var ErrNotInitialized = errors.New("ledger not initialized")
