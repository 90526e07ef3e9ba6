package logical

// Family is a coarse grouping of logical types used for classification.
// It never participates in value conversion.
type Family uint8

const (
	FamilyNull Family = iota
	FamilyTextual
	FamilyNumeric
	FamilyBoolean
	FamilyTemporal
	FamilyBinary
	// FamilyOpaque marks kinds the resolver does not recognize; such types
	// form their own singleton family.
	FamilyOpaque
)

var familyNames = map[Family]string{
	FamilyNull:     "null",
	FamilyTextual:  "textual",
	FamilyNumeric:  "numeric",
	FamilyBoolean:  "boolean",
	FamilyTemporal: "temporal",
	FamilyBinary:   "binary",
	FamilyOpaque:   "opaque",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "family(?)"
}

var kindFamilies = map[Kind]Family{
	KindNull:     FamilyNull,
	KindString:   FamilyTextual,
	KindText:     FamilyTextual,
	KindEnum:     FamilyTextual,
	KindUUID:     FamilyTextual,
	KindInteger:  FamilyNumeric,
	KindSmallInt: FamilyNumeric,
	KindBigInt:   FamilyNumeric,
	KindNumeric:  FamilyNumeric,
	KindFloat:    FamilyNumeric,
	KindBoolean:  FamilyBoolean,
	KindDateTime: FamilyTemporal,
	KindDate:     FamilyTemporal,
	KindTime:     FamilyTemporal,
	KindInterval: FamilyTemporal,
	KindBinary:   FamilyBinary,
	KindPickled:  FamilyBinary,
	KindJSON:     FamilyBinary,
}

// FamilyOf returns the coarse family of t. Unrecognized kinds return
// FamilyOpaque, forming their own singleton family.
func FamilyOf(t Type) Family {
	if f, ok := kindFamilies[t.Kind]; ok {
		return f
	}
	return FamilyOpaque
}

// affinityRoots maps each kind to its canonical root kind: the nearest
// recognized ancestor in the (flattened) specialization chain. Expression
// type inference keys on this value; the coarse Family is too wide to
// distinguish e.g. Date-Date from Date-Interval.
var affinityRoots = map[Kind]Kind{
	KindSmallInt: KindInteger,
	KindBigInt:   KindInteger,
	KindFloat:    KindNumeric,
	KindText:     KindString,
	KindEnum:     KindString,
}

// AffinityOf returns the canonical affinity kind of t: SmallInt and BigInt
// collapse to Integer, Float to Numeric, Text and Enum to String. Kinds
// with no recognized root return themselves.
func AffinityOf(t Type) Kind {
	if root, ok := affinityRoots[t.Kind]; ok {
		return root
	}
	return t.Kind
}

// Concatenable reports whether values of t support string concatenation.
// Replaces mixin-membership checks with an explicit capability.
func Concatenable(t Type) bool {
	switch AffinityOf(t) {
	case KindString:
		return true
	default:
		return false
	}
}
