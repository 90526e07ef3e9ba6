package expr

import "github.com/dmitrymomot/typecodec/pkg/logical"

// Expression adaptation tables, one per canonical affinity kind, mapping
// (operator, right-operand affinity) to the result type. The temporal rules
// follow PostgreSQL's date/time operator matrix.
var adaptations map[logical.Kind]map[Operator]map[logical.Kind]logical.Type

func init() {
	var (
		integer  = logical.Integer()
		numeric  = logical.Numeric(0, 0)
		float    = logical.Float(0)
		date     = logical.Date()
		clock    = logical.Time(false)
		datetime = logical.DateTime(false)
		interval = logical.Interval()
	)

	adaptations = map[logical.Kind]map[Operator]map[logical.Kind]logical.Type{
		logical.KindInteger: {
			OpAdd: {
				logical.KindDate:    date,
				logical.KindInteger: integer,
				logical.KindNumeric: numeric,
			},
			OpSub: {
				logical.KindInteger: integer,
				logical.KindNumeric: numeric,
			},
			OpMul: {
				logical.KindInterval: interval,
				logical.KindInteger:  integer,
				logical.KindNumeric:  numeric,
			},
			OpDiv: {
				logical.KindInteger: integer,
				logical.KindNumeric: numeric,
			},
		},
		logical.KindNumeric: {
			OpAdd: {
				logical.KindNumeric: numeric,
				logical.KindInteger: numeric,
			},
			OpSub: {
				logical.KindNumeric: numeric,
				logical.KindInteger: numeric,
			},
			OpMul: {
				logical.KindInterval: interval,
				logical.KindNumeric:  numeric,
				logical.KindInteger:  numeric,
			},
			OpDiv: {
				logical.KindNumeric: numeric,
				logical.KindInteger: numeric,
			},
		},
		logical.KindFloat: {
			OpAdd: {
				logical.KindNumeric: float,
				logical.KindInteger: float,
			},
			OpSub: {
				logical.KindNumeric: float,
				logical.KindInteger: float,
			},
			OpMul: {
				logical.KindInterval: interval,
				logical.KindNumeric:  float,
				logical.KindInteger:  float,
			},
			OpDiv: {
				logical.KindNumeric: float,
				logical.KindInteger: float,
			},
		},
		logical.KindDateTime: {
			OpAdd: {
				logical.KindInterval: datetime,
			},
			OpSub: {
				logical.KindInterval: datetime,
				logical.KindDateTime: interval,
			},
		},
		logical.KindDate: {
			OpAdd: {
				logical.KindInteger:  date,
				logical.KindInterval: datetime,
				logical.KindTime:     datetime,
			},
			OpSub: {
				// date - integer = date; date - date = day count
				logical.KindInteger:  date,
				logical.KindDate:     integer,
				logical.KindInterval: datetime,
				logical.KindDateTime: interval,
			},
		},
		logical.KindTime: {
			OpAdd: {
				logical.KindDate:     datetime,
				logical.KindInterval: clock,
			},
			OpSub: {
				logical.KindTime:     interval,
				logical.KindInterval: clock,
			},
		},
		logical.KindInterval: {
			OpAdd: {
				logical.KindDate:     datetime,
				logical.KindInterval: interval,
				logical.KindDateTime: datetime,
				logical.KindTime:     clock,
			},
			OpSub: {
				logical.KindInterval: interval,
			},
			OpMul: {
				logical.KindNumeric: interval,
				logical.KindInteger: interval,
			},
			OpDiv: {
				logical.KindNumeric: interval,
				logical.KindInteger: interval,
			},
		},
	}
}

// ResultType infers the logical type of `left op right`.
//
// Lookup goes through the left operand's adaptation table keyed by the
// operator and the right operand's canonical affinity. A missing entry
// under a commutative operator is retried with the operands swapped.
// Concatenation keeps the textual operand's type. When nothing matches,
// the untyped null type is returned: inference is not possible and the
// caller must supply an explicit type.
func ResultType(left logical.Type, op Operator, right logical.Type) logical.Type {
	if op == OpAdd || op == OpConcat {
		if logical.Concatenable(left) && (logical.Concatenable(right) || right.IsNull()) {
			return left
		}
		if logical.Concatenable(right) && left.IsNull() {
			return right
		}
	}

	if t, ok := lookup(left, op, right); ok {
		return t
	}
	if Commutative(op) {
		if t, ok := lookup(right, op, left); ok {
			return t
		}
	}
	return logical.Null()
}

func lookup(left logical.Type, op Operator, right logical.Type) (logical.Type, bool) {
	ops, ok := adaptations[logical.AffinityOf(left)]
	if !ok {
		return logical.Null(), false
	}
	table, ok := ops[op]
	if !ok {
		return logical.Null(), false
	}
	t, ok := table[logical.AffinityOf(right)]
	return t, ok
}
