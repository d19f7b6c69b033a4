package domain

import "errors"

// ErrNotFound is returned by service functions when a referenced trip, day,
// or activity does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing title, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDecode marks a malformed share token. It never escapes share.Decode,
// which reports failure as a false second return value instead.
var ErrDecode = errors.New("malformed share token")
