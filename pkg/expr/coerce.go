package expr

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// coerceOverrides lists the per-type exceptions to the default literal
// coercion rule. Kept as an explicit table rather than folded into a
// universal rule. Populated in init to break the initialization cycle
// with CoercedType.
var coerceOverrides map[logical.Kind]func(t logical.Type, op Operator, value any) logical.Type

func init() {
	coerceOverrides = map[logical.Kind]func(t logical.Type, op Operator, value any) logical.Type{
		// An interval compared against a bare literal behaves like its
		// datetime implementation.
		logical.KindInterval: func(_ logical.Type, op Operator, value any) logical.Type {
			return CoercedType(logical.DateTime(false), op, value)
		},
		// Blob-ish columns accept any literal; the serializer decides.
		logical.KindPickled: func(t logical.Type, _ Operator, _ any) logical.Type { return t },
		logical.KindJSON:    func(t logical.Type, _ Operator, _ any) logical.Type { return t },
	}
}

// CoercedType suggests a logical type for a bare Go literal compared
// against an expression of type t.
//
// The default rule is conservative: when the literal's own type is unknown
// or shares t's canonical affinity, the literal keeps t; otherwise the
// literal's own type wins. Exceptions live in an explicit per-kind override
// table.
func CoercedType(t logical.Type, op Operator, value any) logical.Type {
	if override, ok := coerceOverrides[t.Kind]; ok {
		return override(t, op, value)
	}
	lit := LiteralType(value)
	if lit.IsNull() || logical.AffinityOf(lit) == logical.AffinityOf(t) {
		return t
	}
	return lit
}

// LiteralType maps a Go value's dynamic type to a logical type. Unknown
// dynamic types map to the null type.
func LiteralType(value any) logical.Type {
	switch value.(type) {
	case string:
		return logical.String(0)
	case bool:
		return logical.Bool()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return logical.Integer()
	case float32, float64:
		return logical.Float(0)
	case *big.Rat:
		return logical.Numeric(0, 0)
	case []byte:
		return logical.Binary(0)
	case time.Time:
		return logical.DateTime(false)
	case time.Duration:
		return logical.Interval()
	case uuid.UUID:
		return logical.UUID()
	default:
		return logical.Null()
	}
}
