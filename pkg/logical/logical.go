package logical

import (
	"strconv"
	"strings"
)

// Kind identifies a logical type. The set is flat: parameter differences
// (length, precision, timezone) live on [Type], not in subclass hierarchies.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindText
	KindInteger
	KindSmallInt
	KindBigInt
	KindNumeric
	KindFloat
	KindBoolean
	KindDateTime
	KindDate
	KindTime
	KindInterval
	KindBinary
	KindPickled
	KindEnum
	KindUUID
	KindJSON
)

var kindNames = map[Kind]string{
	KindNull:     "null",
	KindString:   "string",
	KindText:     "text",
	KindInteger:  "integer",
	KindSmallInt: "smallint",
	KindBigInt:   "bigint",
	KindNumeric:  "numeric",
	KindFloat:    "float",
	KindBoolean:  "boolean",
	KindDateTime: "datetime",
	KindDate:     "date",
	KindTime:     "time",
	KindInterval: "interval",
	KindBinary:   "binary",
	KindPickled:  "pickled",
	KindEnum:     "enum",
	KindUUID:     "uuid",
	KindJSON:     "json",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Type is an immutable descriptor of an application-level data kind.
// Identity is structural: two Type values with equal parameters are
// interchangeable, and [Type.Key] produces the same canonical key for both.
//
// Construct types through the package constructors ([String], [Integer],
// [Numeric], ...) rather than struct literals so parameter defaults stay
// consistent.
type Type struct {
	// Comparator overrides value equality for mutable kinds (Pickled, JSON).
	// Nil means structural equality.
	Comparator func(x, y any) bool

	// Values holds the permitted labels of an Enum type.
	Values []string

	// Charset names an optional storage character set for textual kinds.
	// Empty means the value is stored as-is (UTF-8).
	Charset string

	// Length is the declared length of String/Binary types. Zero means
	// unbounded.
	Length int

	// Precision and Scale parameterize Numeric and Float types.
	Precision int
	Scale     int

	Kind Kind

	// AsDecimal selects exact decimal values (*big.Rat) for Numeric types;
	// false selects float64.
	AsDecimal bool

	// Timezone declares whether DateTime/Time values carry an offset.
	Timezone bool

	// Mutable declares that values of this type can change in place, so
	// identity comparison is insufficient to detect change.
	Mutable bool
}

// Null returns the untyped null type. It stands in when no type is known
// and signals "no inference possible" to expression-type lookups.
func Null() Type { return Type{Kind: KindNull} }

// String returns a bounded character type. Zero length means unbounded.
func String(length int) Type { return Type{Kind: KindString, Length: length} }

// Text returns an unbounded character type.
func Text() Type { return Type{Kind: KindText} }

// Integer returns the default integer type.
func Integer() Type { return Type{Kind: KindInteger} }

// SmallInt returns a 16-bit integer type.
func SmallInt() Type { return Type{Kind: KindSmallInt} }

// BigInt returns a 64-bit integer type.
func BigInt() Type { return Type{Kind: KindBigInt} }

// Numeric returns an exact fixed-precision type. Values are *big.Rat.
func Numeric(precision, scale int) Type {
	return Type{Kind: KindNumeric, Precision: precision, Scale: scale, AsDecimal: true}
}

// Float returns an inexact numeric type. Values are float64.
func Float(precision int) Type {
	return Type{Kind: KindFloat, Precision: precision}
}

// Bool returns the boolean type.
func Bool() Type { return Type{Kind: KindBoolean} }

// DateTime returns a timestamp type. When timezone is false, bound values
// are normalized to UTC.
func DateTime(timezone bool) Type { return Type{Kind: KindDateTime, Timezone: timezone} }

// Date returns a calendar-date type.
func Date() Type { return Type{Kind: KindDate} }

// Time returns a time-of-day type.
func Time(timezone bool) Type { return Type{Kind: KindTime, Timezone: timezone} }

// Interval returns a duration type. Values are time.Duration.
func Interval() Type { return Type{Kind: KindInterval} }

// Binary returns a raw byte type. Zero length means unbounded.
func Binary(length int) Type { return Type{Kind: KindBinary, Length: length} }

// Enum returns a string type restricted to the given labels.
func Enum(values ...string) Type {
	return Type{Kind: KindEnum, Values: values}
}

// UUID returns a universally-unique-identifier type. Values are
// github.com/google/uuid.UUID.
func UUID() Type { return Type{Kind: KindUUID} }

// JSON returns a type holding arbitrary JSON-serializable values.
// JSON values are mutable by default.
func JSON() Type { return Type{Kind: KindJSON, Mutable: true} }

// Pickled returns a type holding arbitrary gob-serializable values.
// When mutable is true, change-tracking callers must snapshot values with
// the codec's CopyValue; comparator, if non-nil, overrides equality.
func Pickled(mutable bool, comparator func(x, y any) bool) Type {
	return Type{Kind: KindPickled, Mutable: mutable, Comparator: comparator}
}

// WithCharset returns a copy of t that transcodes values to the named
// storage character set (e.g. "latin-1") on bind. Only meaningful for
// textual kinds.
func (t Type) WithCharset(name string) Type {
	t.Charset = name
	return t
}

// IsNull reports whether t is the untyped null type.
func (t Type) IsNull() bool { return t.Kind == KindNull }

// Key returns the canonical structural identity of t. Types with equal
// parameters share a key; registries use it as the memoization key.
// Comparator is excluded: function values have no structural identity, so
// registries must not share cache entries between comparator-carrying
// types.
func (t Type) Key() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	switch t.Kind {
	case KindString, KindBinary:
		if t.Length > 0 {
			b.WriteString("(" + strconv.Itoa(t.Length) + ")")
		}
	case KindNumeric, KindFloat:
		b.WriteString("(" + strconv.Itoa(t.Precision) + "," + strconv.Itoa(t.Scale) + ")")
		if t.AsDecimal {
			b.WriteString("/dec")
		}
	case KindDateTime, KindTime:
		if t.Timezone {
			b.WriteString("/tz")
		}
	case KindEnum:
		b.WriteString("(" + strings.Join(t.Values, ",") + ")")
	case KindPickled:
		if t.Mutable {
			b.WriteString("/mutable")
		}
	}
	if t.Charset != "" {
		b.WriteString("@" + t.Charset)
	}
	return b.String()
}

// String implements fmt.Stringer using the canonical key.
func (t Type) String() string { return t.Key() }
