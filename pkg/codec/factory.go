package codec

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/typecodec/pkg/logical"
)

// ForType returns the dialect-neutral codec for a logical type. Dialect
// adapters override individual kinds; everything they leave alone resolves
// to these defaults. Types with no generic codec fail with
// [ErrUnsupported].
func ForType(t logical.Type) (Codec, error) {
	switch t.Kind {
	case logical.KindNull:
		return &nullCodec{NewBase(t)}, nil
	case logical.KindString, logical.KindText:
		return newStringCodec(t)
	case logical.KindInteger, logical.KindSmallInt, logical.KindBigInt:
		return &integerCodec{NewBase(t)}, nil
	case logical.KindNumeric:
		if t.AsDecimal {
			return &decimalCodec{NewBase(t)}, nil
		}
		return &floatCodec{NewBase(t)}, nil
	case logical.KindFloat:
		return &floatCodec{NewBase(t)}, nil
	case logical.KindBoolean:
		return &boolCodec{NewBase(t)}, nil
	case logical.KindDateTime:
		return &datetimeCodec{NewBase(t)}, nil
	case logical.KindDate:
		return &dateCodec{NewBase(t)}, nil
	case logical.KindTime:
		return &timeCodec{NewBase(t)}, nil
	case logical.KindInterval:
		return &intervalCodec{NewBase(t)}, nil
	case logical.KindBinary:
		return &binaryCodec{NewBase(t)}, nil
	case logical.KindPickled:
		return &pickledCodec{NewBase(t)}, nil
	case logical.KindEnum:
		return &enumCodec{NewBase(t)}, nil
	case logical.KindUUID:
		return &uuidCodec{NewBase(t)}, nil
	case logical.KindJSON:
		return &jsonCodec{NewBase(t)}, nil
	default:
		return nil, errors.Join(ErrUnsupported, fmt.Errorf("kind %s", t.Kind))
	}
}
