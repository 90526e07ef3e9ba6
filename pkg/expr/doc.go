// Package expr infers the logical result type of typed binary expressions.
//
// [ResultType] answers "what type is column + literal": it consults the
// left operand's adaptation table keyed by operator and the right operand's
// canonical affinity. Types and affinities come from pkg/logical; no value
// conversion happens here.
//
//	expr.ResultType(logical.Integer(), expr.OpAdd, logical.Numeric(10, 2))
//	// numeric
//
//	expr.ResultType(logical.Date(), expr.OpSub, logical.Date())
//	// integer (a day count)
//
// A lookup miss under a commutative operator ([Commutative]) is retried
// with the operands swapped, so inference is symmetric wherever the
// operator is. When no rule matches, the untyped null type comes back —
// not an error, just "no inference possible, supply a type explicitly".
//
// [CoercedType] suggests a type for a bare Go literal compared against a
// typed expression, with the per-kind exceptions kept in an explicit
// override table.
package expr
