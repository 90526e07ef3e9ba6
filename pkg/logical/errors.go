package logical

import "errors"

// ErrDuplicateVariant is returned when a Variant mapping already holds
// an override for the given dialect name.
var ErrDuplicateVariant = errors.New("logical: dialect already present in variant mapping")
