package dialect

import "errors"

var (
	// ErrConfiguration is returned for caller mistakes: an unknown dialect
	// key, a duplicate adapter registration, or a logical type that has
	// neither a dialect override nor a generic codec.
	ErrConfiguration = errors.New("dialect: invalid configuration")

	// ErrAdapter is returned when a dialect's adapter itself fails during
	// codec lookup. Adapter failures are surfaced, never swallowed, and
	// never cached.
	ErrAdapter = errors.New("dialect: adapter failed during resolution")
)
