package quote

import "errors"

// Error classes for failed quote computations. A failed computation is never
// partial; callers decide whether to correct input and recompute.
var (
	// ErrValidation marks caller contract violations in the request fields.
	ErrValidation = errors.New("invalid quote input")

	// ErrInvariant marks conditions that should be unreachable given the
	// closed enumerations, i.e. programming errors.
	ErrInvariant = errors.New("quote invariant violation")

	// ErrConfig marks pricing table gaps that should have been caught at
	// config load time.
	ErrConfig = errors.New("pricing configuration error")
)
