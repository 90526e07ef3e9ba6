package logical

import (
	"errors"
	"fmt"
	"maps"
)

// Variant wraps a base type with per-dialect overrides. It is built with
// [Type.WithVariant] and extended with [Variant.WithVariant]; both return
// new values, the receiver is never modified.
type Variant struct {
	base    Type
	mapping map[string]Type
}

// WithVariant returns a Variant that uses override in place of t when the
// named dialect is active.
func (t Type) WithVariant(dialect string, override Type) Variant {
	return Variant{
		base:    t,
		mapping: map[string]Type{dialect: override},
	}
}

// WithVariant returns a new Variant extending v's mapping with one more
// dialect override. Adding a dialect name already present in the mapping is
// a usage error: it fails with [ErrDuplicateVariant] and v is left intact.
func (v Variant) WithVariant(dialect string, override Type) (Variant, error) {
	if _, exists := v.mapping[dialect]; exists {
		return Variant{}, errors.Join(ErrDuplicateVariant, fmt.Errorf("dialect %q", dialect))
	}
	mapping := maps.Clone(v.mapping)
	if mapping == nil {
		mapping = make(map[string]Type, 1)
	}
	mapping[dialect] = override
	return Variant{base: v.base, mapping: mapping}, nil
}

// Base returns the fallback type used for dialects without an override.
func (v Variant) Base() Type { return v.base }

// ForDialect returns the type to use for the named dialect: the override
// when one is mapped, the base type otherwise.
func (v Variant) ForDialect(dialect string) Type {
	if override, ok := v.mapping[dialect]; ok {
		return override
	}
	return v.base
}

// Dialects returns the dialect names that carry overrides.
func (v Variant) Dialects() []string {
	names := make([]string, 0, len(v.mapping))
	for name := range v.mapping {
		names = append(names, name)
	}
	return names
}
