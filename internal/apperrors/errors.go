package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Asking for a conversion rate that was never stored returns this rather
// than a silent default, since a default rate would corrupt downstream math.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
