package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing license plate, non-numeric trucker reference).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write collides with an existing row, e.g. two
// trucks created concurrently computed the same truck_id.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrMalformedInput is returned by repo functions when a stored row cannot be
// mapped to a domain value. Analytics treat it like any fetch failure and
// degrade to an empty result.
var ErrMalformedInput = errors.New("malformed input")
