package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation clashes with another in-flight or
// previously committed operation (e.g. a reused idempotency key).
var ErrConflict = errors.New("conflicting operation")

// ErrIntegrity indicates the ledger itself is inconsistent (e.g. a transfer leg
// without its pair). Operations that hit it must fail loudly; the data is never
// silently repaired.
var ErrIntegrity = errors.New("ledger integrity violation")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
