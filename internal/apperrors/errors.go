package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStoreUnavailable indicates that a persistence call failed after the
// in-memory mutation was already applied. Callers report it and move on;
// the operation is never retried or rolled back automatically.
var ErrStoreUnavailable = errors.New("store unavailable")
