// Package logical defines application-level type descriptors independent of
// any storage backend.
//
// A [Type] describes what kind of value a model field holds — string,
// integer, exact decimal, timestamp, enum, serialized blob — together with
// its parameters (length, precision, timezone, enum labels). Types are
// immutable values with structural identity: two types built with the same
// constructor and parameters are interchangeable, and [Type.Key] returns the
// same canonical key for both.
//
// The type set is deliberately flat. Instead of a specialization hierarchy
// (String → Unicode → UnicodeText), each type carries a [Kind] tag, and two
// resolvers classify kinds where callers need grouping:
//
//   - [FamilyOf] returns the coarse [Family] (textual, numeric, temporal,
//     binary, boolean, null) used for classification.
//   - [AffinityOf] returns the canonical affinity kind (SmallInt collapses
//     to Integer, Float to Numeric, Text and Enum to String) that
//     expression-type inference keys on.
//
// Capabilities such as [Concatenable] are explicit predicate functions, not
// mixin-type membership.
//
// # Variants
//
// A [Variant] overrides the storage type per dialect while keeping one
// logical declaration:
//
//	t := logical.String(64).WithVariant("mysql", logical.Text())
//	t, err := t.WithVariant("sqlite", logical.String(255))
//
// Adding a dialect name twice fails with [ErrDuplicateVariant]; the original
// Variant is never modified.
package logical
